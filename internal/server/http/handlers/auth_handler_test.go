package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/server/http/dto"
	testhelpers "github.com/treadworks/orderflow/internal/test"
)

func newAuthRouter(facade AuthFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	handler := NewAuthHandler(facade)
	engine.POST("/api/user/register", handler.Register)
	engine.POST("/api/user/login", handler.Login)
	engine.POST("/api/user/password/reset", handler.ResetPassword)
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRegisterHandlerSuccess(t *testing.T) {
	engine := newAuthRouter(testhelpers.AuthFacadeStub{})

	rec := performJSON(t, engine, http.MethodPost, "/api/user/register",
		`{"site":"TWT Sandton","role":"Admin","email":"alice@twt.to","password":"Str0ng!pass"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Severity != "success" || !strings.Contains(resp.Message, "alice@twt.to") {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}

func TestRegisterHandlerValidation(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string, string, string) (*model.User, error) {
			return nil, domainErrors.NewValidation("select a valid site from the list", "provide a valid email address")
		},
	}
	engine := newAuthRouter(facade)

	rec := performJSON(t, engine, http.MethodPost, "/api/user/register", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Errors) != 2 {
		t.Fatalf("all violations must be listed, got %+v", resp)
	}
}

func TestRegisterHandlerDuplicate(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		RegisterFn: func(context.Context, string, string, string, string) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		},
	}
	engine := newAuthRouter(facade)

	rec := performJSON(t, engine, http.MethodPost, "/api/user/register",
		`{"site":"TWT Sandton","role":"Admin","email":"alice@twt.to","password":"Str0ng!pass"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	var resp dto.MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Severity != "warning" {
		t.Fatalf("duplicate must be reported as warning, got %+v", resp)
	}
}

func TestLoginHandlerSuccess(t *testing.T) {
	engine := newAuthRouter(testhelpers.AuthFacadeStub{})

	rec := performJSON(t, engine, http.MethodPost, "/api/user/login",
		`{"login":"alice@twt.to","password":"Str0ng!pass"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if rec.Header().Get("Authorization") != "Bearer token:alice@twt.to" {
		t.Fatalf("token header not set: %q", rec.Header().Get("Authorization"))
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "token:alice@twt.to" {
		t.Fatalf("auth cookie not set: %+v", cookies)
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		},
	}
	engine := newAuthRouter(facade)

	rec := performJSON(t, engine, http.MethodPost, "/api/user/login",
		`{"login":"alice@twt.to","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandlerMalformedBody(t *testing.T) {
	engine := newAuthRouter(testhelpers.AuthFacadeStub{})
	rec := performJSON(t, engine, http.MethodPost, "/api/user/login", `{"login":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestResetPasswordHandler(t *testing.T) {
	engine := newAuthRouter(testhelpers.AuthFacadeStub{})

	rec := performJSON(t, engine, http.MethodPost, "/api/user/password/reset",
		`{"email":"alice@twt.to","site":"TWT Sandton"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	var resp struct {
		Notification dto.NotificationResponse `json:"notification"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Notification.State != "sent" || resp.Notification.Recipient != "alice@twt.to" {
		t.Fatalf("unexpected notification %+v", resp.Notification)
	}
}

func TestResetPasswordHandlerUnknownAccount(t *testing.T) {
	facade := testhelpers.AuthFacadeStub{
		ResetPasswordFn: func(context.Context, string, string) (notify.Delivery, error) {
			return notify.Delivery{}, domainErrors.ErrNotFound
		},
	}
	engine := newAuthRouter(facade)

	rec := performJSON(t, engine, http.MethodPost, "/api/user/password/reset",
		`{"email":"ghost@twt.to","site":"TWT Sandton"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
