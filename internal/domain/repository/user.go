package repository

import (
	"context"

	"github.com/treadworks/orderflow/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	FindBySiteAndRole(ctx context.Context, site string, role model.Role) (*model.User, error)
	FindByEmailAndSite(ctx context.Context, email, site string) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error
}
