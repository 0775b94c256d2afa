package app

import (
	"context"
	"time"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/usecase"
)

// DocumentRenderer produces a printable representation of an order.
type DocumentRenderer interface {
	Render(order *model.Order) ([]byte, error)
}

// WorkflowFacade aggregates the use cases behind one application surface.
type WorkflowFacade struct {
	auth     *usecase.AuthUseCase
	orders   *usecase.OrderUseCase
	renderer DocumentRenderer
	notifier notify.Notifier
}

// NewWorkflowFacade constructs the facade.
func NewWorkflowFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, renderer DocumentRenderer, notifier notify.Notifier) *WorkflowFacade {
	return &WorkflowFacade{auth: auth, orders: orders, renderer: renderer, notifier: notifier}
}

func (f *WorkflowFacade) Register(ctx context.Context, site, role, email, password string) (*model.User, error) {
	return f.auth.Register(ctx, site, role, email, password)
}

func (f *WorkflowFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *WorkflowFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *WorkflowFacade) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	return f.auth.GetByUsername(ctx, username)
}

// ResetPassword issues a temporary credential and mails it to the account.
func (f *WorkflowFacade) ResetPassword(ctx context.Context, email, site string) (notify.Delivery, error) {
	usr, temp, err := f.auth.ResetPassword(ctx, email, site)
	if err != nil {
		return notify.Delivery{}, err
	}
	return notify.Deliver(ctx, f.notifier, notify.PasswordReset(usr, temp)), nil
}

func (f *WorkflowFacade) SubmitOrder(ctx context.Context, actor *model.User, input usecase.SubmitOrderInput) (*model.Order, notify.Delivery, error) {
	return f.orders.Submit(ctx, actor, input)
}

func (f *WorkflowFacade) ApproveOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	return f.orders.Approve(ctx, actor, orderID, empNumber, empName)
}

func (f *WorkflowFacade) DeclineOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	return f.orders.Decline(ctx, actor, orderID, empNumber, empName)
}

func (f *WorkflowFacade) VisibleOrders(ctx context.Context, actor *model.User) ([]model.OrderView, error) {
	return f.orders.Visible(ctx, actor)
}

// OrderDocument renders the PDF for an order visible to the actor.
func (f *WorkflowFacade) OrderDocument(ctx context.Context, actor *model.User, orderID int64) (*model.Order, []byte, error) {
	order, err := f.orders.GetForUser(ctx, actor, orderID)
	if err != nil {
		return nil, nil, err
	}
	document, err := f.renderer.Render(order)
	if err != nil {
		return nil, nil, err
	}
	return order, document, nil
}

// DispatchOrder mails the rendered order document to a supplier address.
func (f *WorkflowFacade) DispatchOrder(ctx context.Context, actor *model.User, orderID int64, supplierEmail string) (*model.Order, notify.Delivery, error) {
	order, document, err := f.OrderDocument(ctx, actor, orderID)
	if err != nil {
		return nil, notify.Delivery{}, err
	}
	msg := notify.SupplierDispatch(order, supplierEmail, document)
	return order, notify.Deliver(ctx, f.notifier, msg), nil
}

// PendingOrdersBefore lists orders still pending past the cutoff.
func (f *WorkflowFacade) PendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	return f.orders.PendingBefore(ctx, cutoff)
}

// RemindCounterpart re-sends the awaiting-approval notification.
func (f *WorkflowFacade) RemindCounterpart(ctx context.Context, order *model.Order) (notify.Delivery, error) {
	return f.orders.RemindCounterpart(ctx, order)
}
