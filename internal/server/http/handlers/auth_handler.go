package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/treadworks/orderflow/internal/server/http/dto"
	"github.com/treadworks/orderflow/internal/server/http/middleware"
)

// AuthHandler processes registration, login and password reset.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.Register(c.Request.Context(), req.Site, req.Role, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Severity: "success",
		Message:  "account created successfully for " + user.Username + ", please log in",
	})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.MessageResponse{
		Severity: "success",
		Message:  "welcome back, you have successfully logged in",
	})
}

// ResetPassword handles POST /api/user/password/reset.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	delivery, err := h.facade.ResetPassword(c.Request.Context(), req.Email, req.Site)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notification": toNotificationResponse(delivery),
	})
}
