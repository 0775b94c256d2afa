package repository

import (
	"context"
	"time"

	"github.com/treadworks/orderflow/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListBySite(ctx context.Context, site string) ([]model.Order, error)
	// Decide applies a terminal decision conditioned on the order still being
	// pending. Returns ErrAlreadyProcessed when another decision won the
	// race, ErrNotFound when the order does not exist.
	Decide(ctx context.Context, orderID int64, decision model.Decision) (*model.Order, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error)
}
