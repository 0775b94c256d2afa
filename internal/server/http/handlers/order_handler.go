package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/treadworks/orderflow/internal/domain/model"
	"github.com/treadworks/orderflow/internal/notify"
	"github.com/treadworks/orderflow/internal/server/http/dto"
	"github.com/treadworks/orderflow/internal/usecase"
)

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	actor := CurrentUser(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	items := make([]model.LineItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.LineItem{
			Quantity:    item.Quantity,
			Description: item.Description,
			UnitCost:    item.UnitCost,
			TotalCost:   item.TotalCost,
		})
	}

	order, delivery, err := h.facade.SubmitOrder(c.Request.Context(), actor, usecase.SubmitOrderInput{
		Supplier:  req.Supplier,
		Items:     items,
		Amount:    req.Amount,
		EmpNumber: req.EmpNumber,
		EmpName:   req.EmpName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OrderResultResponse{
		Order:        toOrderResponse(*order),
		Notification: toNotificationResponse(delivery),
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	actor := CurrentUser(c)
	orders, err := h.facade.VisibleOrders(c.Request.Context(), actor)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, view := range orders {
		item := toOrderResponse(view.Order)
		item.SubmitterRole = view.SubmitterRole
		response = append(response, item)
	}

	c.JSON(http.StatusOK, response)
}

// Approve handles POST /api/orders/:id/approve.
func (h *OrderHandler) Approve(c *gin.Context) {
	h.decide(c, h.facade.ApproveOrder)
}

// Decline handles POST /api/orders/:id/decline.
func (h *OrderHandler) Decline(c *gin.Context) {
	h.decide(c, h.facade.DeclineOrder)
}

type decideFn func(ctx context.Context, actor *model.User, orderID int64, empNumber, empName string) (*model.Order, notify.Delivery, error)

func (h *OrderHandler) decide(c *gin.Context, op decideFn) {
	actor := CurrentUser(c)

	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, delivery, err := op(c.Request.Context(), actor, orderID, req.EmpNumber, req.EmpName)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResultResponse{
		Order:        toOrderResponse(*order),
		Notification: toNotificationResponse(delivery),
	})
}

// Document handles GET /api/orders/:id/document.
func (h *OrderHandler) Document(c *gin.Context) {
	actor := CurrentUser(c)

	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, document, err := h.facade.OrderDocument(c.Request.Context(), actor, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("order-%d.pdf", order.ID)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", document)
}

// Dispatch handles POST /api/orders/:id/dispatch.
func (h *OrderHandler) Dispatch(c *gin.Context) {
	actor := CurrentUser(c)

	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req dto.DispatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if !strings.Contains(req.SupplierEmail, "@") {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Severity: "error",
			Message:  "provide a valid supplier email address",
		})
		return
	}

	order, delivery, err := h.facade.DispatchOrder(c.Request.Context(), actor, orderID, req.SupplierEmail)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResultResponse{
		Order:        toOrderResponse(*order),
		Notification: toNotificationResponse(delivery),
	})
}

func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{
			Severity: "error",
			Message:  "invalid order id",
		})
		return 0, false
	}
	return id, true
}
