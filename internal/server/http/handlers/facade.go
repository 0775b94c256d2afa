package handlers

import (
	"context"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, site, role, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (string, error)
	CurrentUser(ctx context.Context, username string) (*model.User, error)
	ResetPassword(ctx context.Context, email, site string) (notify.Delivery, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	SubmitOrder(ctx context.Context, actor *model.User, input usecase.SubmitOrderInput) (*model.Order, notify.Delivery, error)
	ApproveOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error)
	DeclineOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error)
	VisibleOrders(ctx context.Context, actor *model.User) ([]model.OrderView, error)
	OrderDocument(ctx context.Context, actor *model.User, orderID int64) (*model.Order, []byte, error)
	DispatchOrder(ctx context.Context, actor *model.User, orderID int64, supplierEmail string) (*model.Order, notify.Delivery, error)
}

// WorkflowFacade aggregates the full set of operations used across handlers.
type WorkflowFacade interface {
	AuthFacade
	OrderFacade
}

// HealthChecker verifies readiness of the backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
