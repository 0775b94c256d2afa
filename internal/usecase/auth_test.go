package usecase_test

import (
	"context"
	"strings"
	"testing"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/sites"
	testhelpers "github.com/treadworks/orderflow/internal/test"
	"github.com/treadworks/orderflow/internal/usecase"
)

func newCatalog() *sites.Catalog {
	return sites.New([]string{"TWT Sandton", "TWT Rosebank"})
}

func newAuthUseCase(repo *testhelpers.UserRepositoryStub) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.StrategyStub{}, newCatalog())
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	user, err := uc.Register(ctx, "TWT Sandton", "Admin", "alice@twt.to", "Str0ng!pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user to have ID assigned")
	}
	if user.Username != "alice@twt.to" {
		t.Fatalf("username must equal email, got %q", user.Username)
	}
	stored, err := repo.GetByUsername(ctx, "alice@twt.to")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:Str0ng!pass" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Site != "TWT Sandton" || stored.Role != model.RoleAdmin {
		t.Fatalf("site or role not stored: %+v", stored)
	}
}

func TestAuthUseCaseRegisterCollectsAllViolations(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())

	_, err := uc.Register(context.Background(), "Nowhere", "Supervisor", "not-an-email", "weak")
	ve, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Violations) != 4 {
		t.Fatalf("expected 4 violations, got %v", ve.Violations)
	}
	if !strings.Contains(ve.Violations[3], "password must contain") {
		t.Fatalf("password violations must be folded into one entry: %v", ve.Violations)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())

	ctx := context.Background()
	if _, err := uc.Register(ctx, "TWT Sandton", "Manager", "bob@twt.to", "Str0ng!pass"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	_, err := uc.Register(ctx, "TWT Sandton", "Admin", "bob@twt.to", "Str0ng!pass")
	if err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if _, ok := domainErrors.AsValidation(err); ok {
		t.Fatalf("duplicate must be a conflict, not a validation failure")
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	if _, err := uc.Register(ctx, "TWT Sandton", "Manager", "carol@twt.to", "Str0ng!pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol@twt.to", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody@twt.to", "Str0ng!pass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("unknown account must map to invalid credentials, got %v", err)
	}

	usr, token, err := uc.Authenticate(ctx, "carol@twt.to", "Str0ng!pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if usr.Username != "carol@twt.to" {
		t.Fatalf("unexpected user %q", usr.Username)
	}
	if token != "token:carol@twt.to" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseTokenEmpty(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())
	if _, err := uc.ParseToken(""); err == nil {
		t.Fatalf("empty token must be rejected")
	}
}

func TestAuthUseCaseResetPassword(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(repo)

	ctx := context.Background()
	if _, err := uc.Register(ctx, "TWT Sandton", "Admin", "dave@twt.to", "Str0ng!pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	usr, temp, err := uc.ResetPassword(ctx, "dave@twt.to", "TWT Sandton")
	if err != nil {
		t.Fatalf("reset returned error: %v", err)
	}
	if usr.Username != "dave@twt.to" {
		t.Fatalf("unexpected user %q", usr.Username)
	}
	if len(usecase.PasswordViolations(temp)) != 0 {
		t.Fatalf("temporary password %q violates the credential policy", temp)
	}
	stored, _ := repo.GetByUsername(ctx, "dave@twt.to")
	if stored.PasswordHash != "hash:"+temp {
		t.Fatalf("temporary credential not stored")
	}
}

func TestAuthUseCaseResetPasswordUnknownAccount(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())
	if _, _, err := uc.ResetPassword(context.Background(), "ghost@twt.to", "TWT Sandton"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
