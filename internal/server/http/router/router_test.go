package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/server/http/handlers"
	testhelpers "github.com/treadworks/orderflow/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	actor := &model.User{Username: "admin@twt.to", Email: "admin@twt.to", Role: model.RoleAdmin, Site: "TWT Sandton"}
	facade := testhelpers.WorkflowFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{User: actor},
	}
	engine := Setup(facade, testhelpers.HealthCheckerStub{}, logger)

	body, _ := json.Marshal(map[string]string{
		"site": "TWT Sandton", "role": "Admin", "email": "admin@twt.to", "password": "Str0ng!pass",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token:admin@twt.to")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for healthz, got %d", resp.Code)
	}
}

var _ handlers.WorkflowFacade = (*testhelpers.WorkflowFacadeStub)(nil)
