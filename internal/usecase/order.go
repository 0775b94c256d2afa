package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/domain/repository"
	"github.com/treadworks/orderflow/internal/notify"
)

// SubmitOrderInput carries the order form as entered by the submitter.
// Amount arrives as text; a present but unparseable value is a distinct
// failure from a missing one.
type SubmitOrderInput struct {
	Supplier  string
	Items     []model.LineItem
	Amount    string
	EmpNumber string
	EmpName   string
}

// OrderUseCase enforces the approval lifecycle: who may transition an order,
// which transitions are legal, and what notification each one emits.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, notifier notify.Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, notifier: notifier, now: time.Now}
}

// Submit validates the form, creates a pending order scoped to the actor's
// site, and notifies the opposite-role counterpart at that site. A missing
// counterpart or a failed send is reported in the Delivery, never as an
// error: the created order stands.
func (u *OrderUseCase) Submit(ctx context.Context, actor *model.User, input SubmitOrderInput) (*model.Order, notify.Delivery, error) {
	var violations []string

	supplier := strings.TrimSpace(input.Supplier)
	if supplier == "" {
		violations = append(violations, "supplier is required")
	}

	description := AssembleDescription(input.Items)
	if description == "" {
		violations = append(violations, "at least one item description is required")
	}

	amountStr := strings.TrimSpace(input.Amount)
	if amountStr == "" {
		violations = append(violations, "total amount incl. is required")
	}

	empNumber := strings.TrimSpace(input.EmpNumber)
	empName := strings.TrimSpace(input.EmpName)
	if empNumber == "" || empName == "" {
		violations = append(violations, "employee number and employee name are required for submission")
	}

	if len(violations) > 0 {
		return nil, notify.Delivery{}, domainErrors.NewValidation(violations...)
	}

	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return nil, notify.Delivery{}, domainErrors.ErrInvalidAmount
	}

	order, err := u.orders.Create(ctx, &model.Order{
		Supplier:           supplier,
		Description:        description,
		Amount:             amount,
		Submitter:          actor.Username,
		Site:               actor.Site,
		Status:             model.OrderStatusPending,
		SubmitterEmpNumber: empNumber,
		SubmitterEmpName:   empName,
	})
	if err != nil {
		return nil, notify.Delivery{}, err
	}

	delivery := u.notifyCounterpart(ctx, actor, order)
	return order, delivery, nil
}

func (u *OrderUseCase) notifyCounterpart(ctx context.Context, actor *model.User, order *model.Order) notify.Delivery {
	counterpartRole := actor.Role.Counterpart()
	counterpart, err := u.users.FindBySiteAndRole(ctx, actor.Site, counterpartRole)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return notify.NoRecipient(fmt.Sprintf("no %s found at %s to notify", counterpartRole, actor.Site))
		}
		return notify.Delivery{State: notify.StateFailed, Reason: err.Error()}
	}
	return notify.Deliver(ctx, u.notifier, notify.AwaitingApproval(order, actor, counterpart))
}

// Approve transitions a pending order to approved and notifies the submitter.
func (u *OrderUseCase) Approve(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	return u.decide(ctx, actor, orderID, model.OrderStatusApproved, empNumber, empName)
}

// Decline transitions a pending order to declined and notifies the submitter.
func (u *OrderUseCase) Decline(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	return u.decide(ctx, actor, orderID, model.OrderStatusDeclined, empNumber, empName)
}

// decide runs the transition preconditions in their required sequence and
// applies the terminal decision. The repository update is conditioned on the
// order still being pending, so two racing decisions cannot both commit.
func (u *OrderUseCase) decide(ctx context.Context, actor *model.User, orderID int64, status model.OrderStatus, empNumber, empName string) (*model.Order, notify.Delivery, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, notify.Delivery{}, err
	}

	if order.Status.Terminal() {
		return nil, notify.Delivery{}, domainErrors.ErrAlreadyProcessed
	}

	submitter, err := u.users.GetByUsername(ctx, order.Submitter)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, notify.Delivery{}, domainErrors.ErrSubmitterUnresolved
		}
		return nil, notify.Delivery{}, err
	}

	if !model.CanAct(actor.Role, submitter.Role) {
		return nil, notify.Delivery{}, domainErrors.ErrNotAuthorized
	}

	empNumber = strings.TrimSpace(empNumber)
	empName = strings.TrimSpace(empName)
	if empNumber == "" || empName == "" {
		return nil, notify.Delivery{}, domainErrors.NewValidation("employee number and employee name are required")
	}

	decided, err := u.orders.Decide(ctx, orderID, model.Decision{
		Status:    status,
		Approver:  actor.Username,
		EmpNumber: empNumber,
		EmpName:   empName,
		DecidedAt: u.now(),
	})
	if err != nil {
		return nil, notify.Delivery{}, err
	}

	var msg notify.Message
	if status == model.OrderStatusApproved {
		msg = notify.Approved(decided, submitter, actor)
	} else {
		msg = notify.Declined(decided, submitter, actor)
	}
	return decided, notify.Deliver(ctx, u.notifier, msg), nil
}

// Visible returns the orders at the user's site, newest first, each
// annotated with the submitter's role label. An unresolvable submitter
// degrades that row to "Unknown" without aborting the listing.
func (u *OrderUseCase) Visible(ctx context.Context, user *model.User) ([]model.OrderView, error) {
	orders, err := u.orders.ListBySite(ctx, user.Site)
	if err != nil {
		return nil, err
	}

	roles := make(map[string]string)
	views := make([]model.OrderView, 0, len(orders))
	for _, o := range orders {
		label, ok := roles[o.Submitter]
		if !ok {
			label = "Unknown"
			if submitter, err := u.users.GetByUsername(ctx, o.Submitter); err == nil {
				label = string(submitter.Role)
			}
			roles[o.Submitter] = label
		}
		views = append(views, model.OrderView{Order: o, SubmitterRole: label})
	}
	return views, nil
}

// GetForUser fetches an order visible to the user. Orders at other sites are
// reported as not found.
func (u *OrderUseCase) GetForUser(ctx context.Context, user *model.User, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Site != user.Site {
		return nil, domainErrors.ErrNotFound
	}
	return order, nil
}

// PendingBefore lists pending orders created before the cutoff, across all
// sites. Used by the reminder job.
func (u *OrderUseCase) PendingBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	return u.orders.ListPendingBefore(ctx, cutoff)
}

// RemindCounterpart re-sends the awaiting-approval notification for a still
// pending order.
func (u *OrderUseCase) RemindCounterpart(ctx context.Context, order *model.Order) (notify.Delivery, error) {
	submitter, err := u.users.GetByUsername(ctx, order.Submitter)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return notify.Delivery{}, domainErrors.ErrSubmitterUnresolved
		}
		return notify.Delivery{}, err
	}
	return u.notifyCounterpart(ctx, submitter, order), nil
}
