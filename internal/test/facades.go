package test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/usecase"
)

// NotifierStub records sent messages for tests.
type NotifierStub struct {
	SendFn func(context.Context, notify.Message) error
	Err    error

	mu   sync.Mutex
	Sent []notify.Message
}

// Send stores the message or delegates to the override.
func (s *NotifierStub) Send(ctx context.Context, msg notify.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, msg)
	return nil
}

// Messages returns a snapshot of recorded messages.
func (s *NotifierStub) Messages() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.Sent))
	copy(out, s.Sent)
	return out
}

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string, string) (*model.User, error)
	AuthenticateFn  func(context.Context, string, string) (string, error)
	ParseFn         func(string) (string, error)
	CurrentUserFn   func(context.Context, string) (*model.User, error)
	ResetPasswordFn func(context.Context, string, string) (notify.Delivery, error)
	User            *model.User
}

// Register returns the configured user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, site, role, email, password string) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, site, role, email, password)
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{Username: email, Email: email, Site: site, Role: model.Role(role)}, nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token:" + login, nil
}

// ParseToken returns the username behind a token.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	if len(token) > 6 && token[:6] == "token:" {
		return token[6:], nil
	}
	return "", errors.New("malformed token")
}

// CurrentUser resolves the configured user.
func (s AuthFacadeStub) CurrentUser(ctx context.Context, username string) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx, username)
	}
	if s.User != nil {
		return s.User, nil
	}
	return &model.User{Username: username, Email: username}, nil
}

// ResetPassword returns a sent delivery by default.
func (s AuthFacadeStub) ResetPassword(ctx context.Context, email, site string) (notify.Delivery, error) {
	if s.ResetPasswordFn != nil {
		return s.ResetPasswordFn(ctx, email, site)
	}
	return notify.Delivery{State: notify.StateSent, Recipient: email}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	SubmitFn   func(context.Context, *model.User, usecase.SubmitOrderInput) (*model.Order, notify.Delivery, error)
	ApproveFn  func(context.Context, *model.User, int64, string, string) (*model.Order, notify.Delivery, error)
	DeclineFn  func(context.Context, *model.User, int64, string, string) (*model.Order, notify.Delivery, error)
	VisibleFn  func(context.Context, *model.User) ([]model.OrderView, error)
	DocumentFn func(context.Context, *model.User, int64) (*model.Order, []byte, error)
	DispatchFn func(context.Context, *model.User, int64, string) (*model.Order, notify.Delivery, error)
}

// SubmitOrder delegates to provided function or returns a pending order.
func (s OrderFacadeStub) SubmitOrder(ctx context.Context, actor *model.User, input usecase.SubmitOrderInput) (*model.Order, notify.Delivery, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, actor, input)
	}
	order := &model.Order{ID: 1, Supplier: input.Supplier, Submitter: actor.Username, Site: actor.Site, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}
	return order, notify.Delivery{State: notify.StateSent}, nil
}

// ApproveOrder delegates or approves order 1.
func (s OrderFacadeStub) ApproveOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, actor, orderID, empNumber, empName)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusApproved}, notify.Delivery{State: notify.StateSent}, nil
}

// DeclineOrder delegates or declines order 1.
func (s OrderFacadeStub) DeclineOrder(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	if s.DeclineFn != nil {
		return s.DeclineFn(ctx, actor, orderID, empNumber, empName)
	}
	return &model.Order{ID: orderID, Status: model.OrderStatusDeclined}, notify.Delivery{State: notify.StateSent}, nil
}

// VisibleOrders returns predefined orders for given user.
func (s OrderFacadeStub) VisibleOrders(ctx context.Context, actor *model.User) ([]model.OrderView, error) {
	if s.VisibleFn != nil {
		return s.VisibleFn(ctx, actor)
	}
	return []model.OrderView{{Order: model.Order{ID: 1, Site: actor.Site}, SubmitterRole: "Manager"}}, nil
}

// OrderDocument returns a small fixed document.
func (s OrderFacadeStub) OrderDocument(ctx context.Context, actor *model.User, orderID int64) (*model.Order, []byte, error) {
	if s.DocumentFn != nil {
		return s.DocumentFn(ctx, actor, orderID)
	}
	return &model.Order{ID: orderID}, []byte("%PDF-stub"), nil
}

// DispatchOrder reports a sent delivery by default.
func (s OrderFacadeStub) DispatchOrder(ctx context.Context, actor *model.User, orderID int64, supplierEmail string) (*model.Order, notify.Delivery, error) {
	if s.DispatchFn != nil {
		return s.DispatchFn(ctx, actor, orderID, supplierEmail)
	}
	return &model.Order{ID: orderID}, notify.Delivery{State: notify.StateSent, Recipient: supplierEmail}, nil
}

// WorkflowFacadeStub aggregates facade dependencies for HTTP layer tests.
type WorkflowFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
}

// HealthCheckerStub reports configured readiness.
type HealthCheckerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthCheckerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}

// ReminderFacadeStub mimics worker interactions with the workflow facade.
type ReminderFacadeStub struct {
	PendingFn func(context.Context, time.Time) ([]model.Order, error)
	RemindFn  func(context.Context, *model.Order) (notify.Delivery, error)

	mu       sync.Mutex
	Reminded []int64
}

// PendingOrdersBefore returns the configured pending set.
func (s *ReminderFacadeStub) PendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	if s.PendingFn != nil {
		return s.PendingFn(ctx, cutoff)
	}
	return nil, nil
}

// RemindCounterpart records the order reminded about.
func (s *ReminderFacadeStub) RemindCounterpart(ctx context.Context, order *model.Order) (notify.Delivery, error) {
	if s.RemindFn != nil {
		return s.RemindFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Reminded = append(s.Reminded, order.ID)
	return notify.Delivery{State: notify.StateSent}, nil
}
