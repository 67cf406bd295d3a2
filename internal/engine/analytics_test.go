package engine

import (
	"testing"
	"time"

	"where-is-my-table/internal/models"
)

func TestSnapshotEmptyEngine(t *testing.T) {
	e := newTestEngine()

	snap := e.Snapshot()
	if snap.TotalOrders != 0 || snap.TotalRevenue != 0 || snap.TotalClients != 0 || snap.TotalChefs != 0 {
		t.Errorf("expected zeroed totals, got %+v", snap)
	}
	if len(snap.RevenueByDay) != 0 {
		t.Errorf("expected empty revenue series, got %v", snap.RevenueByDay)
	}
}

func TestSnapshotAggregates(t *testing.T) {
	e := newTestEngine()
	monday := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return monday }

	if _, err := e.CreateChef(models.CreateChefRequest{Name: "Aruzhan"}); err != nil {
		t.Fatalf("CreateChef: %v", err)
	}
	table, _ := e.CreateTable(models.CreateTableRequest{ChairCount: 4})

	// Two takeaway orders on Monday, one dinein on Tuesday.
	first, _ := e.SubmitOrder(takeawayRequest())
	second, _ := e.SubmitOrder(takeawayRequest())
	e.now = func() time.Time { return monday.Add(24 * time.Hour) }
	third, _ := e.SubmitOrder(dineinRequest(table.Number))

	if _, err := e.AdvanceStatus(first.ID, models.StatusDone); err != nil {
		t.Fatalf("AdvanceStatus: %v", err)
	}

	snap := e.Snapshot()

	if snap.TotalOrders != 3 {
		t.Errorf("expected 3 orders, got %d", snap.TotalOrders)
	}
	wantRevenue := first.GrandTotal + second.GrandTotal + third.GrandTotal
	if snap.TotalRevenue != wantRevenue {
		t.Errorf("expected revenue %v, got %v", wantRevenue, snap.TotalRevenue)
	}
	if snap.TotalChefs != 1 {
		t.Errorf("expected 1 chef, got %d", snap.TotalChefs)
	}
	// Both takeaway orders share a phone; the dinein customer is distinct.
	if snap.TotalClients != 2 {
		t.Errorf("expected 2 distinct customers, got %d", snap.TotalClients)
	}

	if snap.OrdersByType["takeaway"] != 2 || snap.OrdersByType["dinein"] != 1 {
		t.Errorf("unexpected type breakdown: %v", snap.OrdersByType)
	}
	if snap.OrdersByType["served"] != 1 {
		t.Errorf("expected 1 served order, got %d", snap.OrdersByType["served"])
	}
	if snap.OrdersByStatus["processing"] != 2 || snap.OrdersByStatus["done"] != 1 {
		t.Errorf("unexpected status breakdown: %v", snap.OrdersByStatus)
	}

	if len(snap.RevenueByDay) != 2 {
		t.Fatalf("expected 2 revenue days, got %v", snap.RevenueByDay)
	}
	if snap.RevenueByDay[0].Day != "Mon" || snap.RevenueByDay[0].Revenue != first.GrandTotal+second.GrandTotal {
		t.Errorf("unexpected Monday bucket: %+v", snap.RevenueByDay[0])
	}
	if snap.RevenueByDay[1].Day != "Tue" || snap.RevenueByDay[1].Revenue != third.GrandTotal {
		t.Errorf("unexpected Tuesday bucket: %+v", snap.RevenueByDay[1])
	}

	if len(snap.ChefOrderDistribution) != 1 {
		t.Fatalf("expected 1 chef entry, got %v", snap.ChefOrderDistribution)
	}
	if snap.ChefOrderDistribution[0].Name != "Aruzhan" || snap.ChefOrderDistribution[0].Orders != 3 {
		t.Errorf("unexpected chef distribution: %+v", snap.ChefOrderDistribution[0])
	}
}

func TestSnapshotIsRecomputedNotCached(t *testing.T) {
	e := newTestEngine()

	before := e.Snapshot()
	if before.TotalOrders != 0 {
		t.Fatalf("expected empty snapshot, got %d orders", before.TotalOrders)
	}

	if _, err := e.SubmitOrder(takeawayRequest()); err != nil {
		t.Fatalf("SubmitOrder: %v", err)
	}

	after := e.Snapshot()
	if after.TotalOrders != 1 {
		t.Errorf("expected snapshot to reflect the new order, got %d", after.TotalOrders)
	}
	// The earlier snapshot is a value copy and stays frozen.
	if before.TotalOrders != 0 {
		t.Errorf("earlier snapshot must not change retroactively")
	}
}
