package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/treadworks/orderflow/internal/domain/errors"
	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/server/http/dto"
	"github.com/treadworks/orderflow/internal/server/http/middleware"
)

// CurrentUser extracts the authenticated user from the gin context.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.CurrentUserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// writeError resolves the operation error into a status code and message
// envelope. Every rejected operation gets a human-readable explanation.
func writeError(c *gin.Context, err error) {
	if ve, ok := domainErrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Severity: "error",
			Message:  "validation failed",
			Errors:   ve.Violations,
		})
		return
	}

	switch {
	case err == domainErrors.ErrInvalidAmount:
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Severity: "error",
			Message:  "please enter a valid number for the total amount incl.",
		})
	case err == domainErrors.ErrInvalidCredentials:
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{
			Severity: "error",
			Message:  "invalid username or password, please try again",
		})
	case err == domainErrors.ErrNotAuthorized:
		c.JSON(http.StatusForbidden, dto.MessageResponse{
			Severity: "error",
			Message:  "you are not authorized to process this order",
		})
	case err == domainErrors.ErrNotFound:
		c.JSON(http.StatusNotFound, dto.MessageResponse{
			Severity: "error",
			Message:  "not found",
		})
	case err == domainErrors.ErrAlreadyExists:
		c.JSON(http.StatusConflict, dto.MessageResponse{
			Severity: "warning",
			Message:  "an account with this email address already exists, please log in",
		})
	case err == domainErrors.ErrAlreadyProcessed:
		c.JSON(http.StatusConflict, dto.MessageResponse{
			Severity: "info",
			Message:  "this order has already been processed",
		})
	case err == domainErrors.ErrSubmitterUnresolved:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Severity: "error",
			Message:  "submitter account not found",
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Severity: "error",
			Message:  "internal error",
		})
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		Supplier:           order.Supplier,
		Description:        order.Description,
		Amount:             order.Amount,
		Submitter:          order.Submitter,
		Site:               order.Site,
		CreatedAt:          order.CreatedAt,
		Status:             string(order.Status),
		Approver:           order.Approver,
		ApprovedAt:         order.ApprovedAt,
		SubmitterEmpNumber: order.SubmitterEmpNumber,
		SubmitterEmpName:   order.SubmitterEmpName,
		ApproverEmpNumber:  order.ApproverEmpNumber,
		ApproverEmpName:    order.ApproverEmpName,
	}
}

func toNotificationResponse(d notify.Delivery) dto.NotificationResponse {
	return dto.NotificationResponse{
		State:     string(d.State),
		Recipient: d.Recipient,
		Reason:    d.Reason,
	}
}
