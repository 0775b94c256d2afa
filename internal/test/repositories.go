package test

import (
	"context"
	"sort"
	"time"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	order []string
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	s.Next++
	s.Users[stored.Username] = &stored
	s.order = append(s.order, stored.Username)
	result := stored
	return &result, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		result := *user
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// FindBySiteAndRole returns the first registered user matching site and role.
func (s *UserRepositoryStub) FindBySiteAndRole(ctx context.Context, site string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, username := range s.order {
		user := s.Users[username]
		if user != nil && user.Site == site && user.Role == role {
			result := *user
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// FindByEmailAndSite locates a user by email within a site.
func (s *UserRepositoryStub) FindByEmailAndSite(ctx context.Context, email, site string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, username := range s.order {
		user := s.Users[username]
		if user != nil && user.Email == email && user.Site == site {
			result := *user
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdatePasswordHash replaces the stored credential for username.
func (s *UserRepositoryStub) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[username]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

// OrderRepositoryStub keeps orders in-memory and allows tests to customize
// behaviour via function overrides.
type OrderRepositoryStub struct {
	CreateFn            func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn           func(context.Context, int64) (*model.Order, error)
	ListBySiteFn        func(context.Context, string) ([]model.Order, error)
	DecideFn            func(context.Context, int64, model.Decision) (*model.Order, error)
	ListPendingBeforeFn func(context.Context, time.Time) ([]model.Order, error)

	Orders []model.Order
	Next   int64
}

// Create assigns an identifier and stores the order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *order
	stored.ID = s.Next
	s.Next++
	s.Orders = append(s.Orders, stored)
	result := stored
	return &result, nil
}

// GetByID fetches a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			result := s.Orders[i]
			return &result, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListBySite returns stored orders for the site, newest first.
func (s *OrderRepositoryStub) ListBySite(ctx context.Context, site string) ([]model.Order, error) {
	if s.ListBySiteFn != nil {
		return s.ListBySiteFn(ctx, site)
	}
	var matched []model.Order
	for _, o := range s.Orders {
		if o.Site == site {
			matched = append(matched, o)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return matched, nil
}

// Decide applies a terminal decision only while the order is still pending.
func (s *OrderRepositoryStub) Decide(ctx context.Context, orderID int64, decision model.Decision) (*model.Order, error) {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, orderID, decision)
	}
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		if s.Orders[i].Status != model.OrderStatusPending {
			return nil, domainErrors.ErrAlreadyProcessed
		}
		s.Orders[i].Status = decision.Status
		approver := decision.Approver
		decidedAt := decision.DecidedAt
		empNumber := decision.EmpNumber
		empName := decision.EmpName
		s.Orders[i].Approver = &approver
		s.Orders[i].ApprovedAt = &decidedAt
		s.Orders[i].ApproverEmpNumber = &empNumber
		s.Orders[i].ApproverEmpName = &empName
		result := s.Orders[i]
		return &result, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListPendingBefore returns pending orders created before the cutoff.
func (s *OrderRepositoryStub) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]model.Order, error) {
	if s.ListPendingBeforeFn != nil {
		return s.ListPendingBeforeFn(ctx, cutoff)
	}
	var matched []model.Order
	for _, o := range s.Orders {
		if o.Status == model.OrderStatusPending && o.CreatedAt.Before(cutoff) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
