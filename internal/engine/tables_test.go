package engine

import (
	"errors"
	"fmt"
	"testing"

	"where-is-my-table/internal/models"
)

func TestCreateTableCapacity(t *testing.T) {
	e := newTestEngine()

	for i := 0; i < MaxTables; i++ {
		if _, err := e.CreateTable(models.CreateTableRequest{ChairCount: 4}); err != nil {
			t.Fatalf("creating table %d: %v", i+1, err)
		}
	}

	_, err := e.CreateTable(models.CreateTableRequest{ChairCount: 4})
	if !errors.Is(err, models.ErrCapacityExceeded) {
		t.Fatalf("expected ErrCapacityExceeded for 31st table, got %v", err)
	}
	if got := len(e.ListTables()); got != MaxTables {
		t.Errorf("expected %d tables after failed create, got %d", MaxTables, got)
	}
}

func TestCreateTableValidation(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		chairs int
	}{
		{name: "zero chairs", chairs: 0},
		{name: "negative chairs", chairs: -2},
		{name: "too many chairs", chairs: 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.CreateTable(models.CreateTableRequest{ChairCount: tt.chairs})
			var engineErr *models.Error
			if !errors.As(err, &engineErr) || engineErr.Kind != models.KindValidation {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestDeleteReservedTableFails(t *testing.T) {
	e := newTestEngine()
	table, err := e.CreateTable(models.CreateTableRequest{ChairCount: 2})
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if _, err := e.SubmitOrder(dineinRequest(table.Number)); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	if err := e.DeleteTable(table.ID); !errors.Is(err, models.ErrTableReserved) {
		t.Fatalf("expected ErrTableReserved, got %v", err)
	}
	if got := len(e.ListTables()); got != 1 {
		t.Errorf("expected table count unchanged at 1, got %d", got)
	}
}

func TestDeleteTableNotFound(t *testing.T) {
	e := newTestEngine()
	if err := e.DeleteTable("table_42"); !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestTableNumbersStableAfterDelete(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 3; i++ {
		if _, err := e.CreateTable(models.CreateTableRequest{ChairCount: 4}); err != nil {
			t.Fatalf("CreateTable: %v", err)
		}
	}

	if err := e.DeleteTable("table_2"); err != nil {
		t.Fatalf("DeleteTable: %v", err)
	}

	var numbers []int
	for _, table := range e.ListTables() {
		numbers = append(numbers, table.Number)
	}
	if fmt.Sprint(numbers) != "[1 3]" {
		t.Errorf("expected numbers [1 3] after delete, got %v", numbers)
	}

	// Deleted numbers are never reused.
	created, err := e.CreateTable(models.CreateTableRequest{ChairCount: 4})
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if created.Number != 4 {
		t.Errorf("expected next number 4, got %d", created.Number)
	}
}

func TestReserveReleaseSequence(t *testing.T) {
	var r tableRegistry
	table, err := r.create(models.CreateTableRequest{ChairCount: 4})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := r.reserve(table.ID); err != nil {
		t.Fatalf("first reserve: %v", err)
	}
	if err := r.reserve(table.ID); !errors.Is(err, models.ErrAlreadyReserved) {
		t.Fatalf("expected ErrAlreadyReserved on second reserve, got %v", err)
	}

	if err := r.release(table.ID); err != nil {
		t.Fatalf("release: %v", err)
	}
	// Release is an idempotent no-op on an available table.
	if err := r.release(table.ID); err != nil {
		t.Fatalf("repeated release: %v", err)
	}
	if err := r.reserve(table.ID); err != nil {
		t.Fatalf("reserve after release: %v", err)
	}

	if err := r.reserve("table_404"); !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
	if err := r.release("table_404"); !errors.Is(err, models.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}

	if table.Status != models.TableReserved {
		t.Errorf("expected final status reserved, got %s", table.Status)
	}
}
