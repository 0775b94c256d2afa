package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/domain/repository"
	pkgAuth "github.com/treadworks/orderflow/internal/pkg/auth"
	"github.com/treadworks/orderflow/internal/sites"
)

// AuthUseCase handles registration, credentials and token management.
type AuthUseCase struct {
	users   repository.UserRepository
	hasher  pkgAuth.PasswordHasher
	tokens  pkgAuth.Strategy
	catalog *sites.Catalog
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, catalog *sites.Catalog) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy, catalog: catalog}
}

// Register validates the registration form and creates the account. The
// username is fixed to the email address. Every violated rule is reported
// together; a duplicate email is a conflict, not a validation failure.
func (u *AuthUseCase) Register(ctx context.Context, site, role, email, password string) (*model.User, error) {
	site = strings.TrimSpace(site)
	email = strings.TrimSpace(email)

	var violations []string
	if !u.catalog.Contains(site) {
		violations = append(violations, "select a valid site from the list")
	}
	parsedRole, ok := model.ParseRole(role)
	if !ok {
		violations = append(violations, "select either Admin or Manager role")
	}
	if !ValidEmail(email) {
		violations = append(violations, "provide a valid email address")
	}
	if pw := PasswordViolations(password); len(pw) > 0 {
		violations = append(violations, "password must contain "+strings.Join(pw, ", "))
	}
	if len(violations) > 0 {
		return nil, domainErrors.NewValidation(violations...)
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, &model.User{
		Username:     email,
		Email:        email,
		PasswordHash: hash,
		Role:         parsedRole,
		Site:         site,
	})
	if err != nil {
		return nil, err
	}
	return usr, nil
}

// Authenticate validates credentials and returns an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.User, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.Username)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken extracts the username from a provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByUsername fetches a user by login.
func (u *AuthUseCase) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return u.users.GetByUsername(ctx, username)
}

// ResetPassword issues a temporary credential for the account matching email
// and site, stores its hash, and returns the plaintext for delivery.
func (u *AuthUseCase) ResetPassword(ctx context.Context, email, site string) (*model.User, string, error) {
	usr, err := u.users.FindByEmailAndSite(ctx, strings.TrimSpace(email), strings.TrimSpace(site))
	if err != nil {
		return nil, "", err
	}

	temp := strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "A1!"
	hash, err := u.hasher.Hash(temp)
	if err != nil {
		return nil, "", err
	}

	if err := u.users.UpdatePasswordHash(ctx, usr.Username, hash); err != nil {
		return nil, "", err
	}
	return usr, temp, nil
}
