// Package archive journals completed orders into PostgreSQL. The
// engine hands orders over through a buffered channel and never waits
// on the database; the archive is a write-behind sink, not a source of
// truth, and the engine never reads it back.
package archive

import (
	"context"
	"fmt"

	"where-is-my-table/internal/database"
	"where-is-my-table/internal/logger"
	"where-is-my-table/internal/models"
)

// sinkBuffer bounds how many completed orders may wait for the
// database before the engine starts dropping hand-offs.
const sinkBuffer = 256

// Archiver consumes completed orders and writes them to the archive
// database.
type Archiver struct {
	db   *database.DB
	log  *logger.Logger
	sink chan models.Order
}

// New creates an archiver around an open database connection.
func New(db *database.DB, log *logger.Logger) *Archiver {
	return &Archiver{
		db:   db,
		log:  log,
		sink: make(chan models.Order, sinkBuffer),
	}
}

// Sink is the channel the engine pushes completed orders into.
func (a *Archiver) Sink() chan<- models.Order {
	return a.sink
}

// Run consumes the sink until the context is cancelled, draining
// whatever is already buffered before returning.
func (a *Archiver) Run(ctx context.Context) error {
	for {
		select {
		case order := <-a.sink:
			a.store(ctx, order)
		case <-ctx.Done():
			for {
				select {
				case order := <-a.sink:
					a.store(context.Background(), order)
				default:
					return nil
				}
			}
		}
	}
}

func (a *Archiver) store(ctx context.Context, order models.Order) {
	if err := a.insertOrder(ctx, order); err != nil {
		// A failed insert is logged and dropped; the engine keeps the
		// authoritative copy and must not stall on the archive.
		a.log.Error("archive_failed", "Failed to archive completed order", "", err,
			map[string]interface{}{"order_id": order.ID})
		return
	}
	a.log.Debug("order_archived", "Completed order archived", "", map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.Number,
	})
}

func (a *Archiver) insertOrder(ctx context.Context, order models.Order) error {
	tx, err := a.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, insertArchivedOrderSQL,
		order.ID, order.Number, string(order.Type), order.TableNumber,
		order.CustomerName, order.CustomerPhone, order.CustomerAddress,
		order.TotalAmount, order.Taxes, order.DeliveryCharge, order.GrandTotal,
		order.ProcessingTime, order.AssignedChef, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert archived order: %w", err)
	}

	for _, item := range order.Items {
		_, err = tx.Exec(ctx, insertArchivedItemSQL,
			order.ID, item.MenuItemID, item.MenuItemName, item.Quantity,
			item.Price, item.PreparationTime, item.CookingInstructions)
		if err != nil {
			return fmt.Errorf("failed to insert archived order item: %w", err)
		}
	}

	return tx.Commit(ctx)
}
