package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pedidoflow/backend/internal/application/ordering"
	"github.com/pedidoflow/backend/internal/infrastructure/logger"
	"github.com/pedidoflow/backend/internal/interfaces/http/middleware"
)

// OrderHandler handles order intake HTTP requests
type OrderHandler struct {
	BaseHandler
	service *ordering.Service
	authMW  gin.HandlerFunc
}

// NewOrderHandler creates a new order handler. The auth middleware
// guards the mutating routes only; reads stay open.
func NewOrderHandler(service *ordering.Service, authMW gin.HandlerFunc) *OrderHandler {
	return &OrderHandler{service: service, authMW: authMW}
}

// RegisterRoutes registers the order routes. The static /order/list
// path coexists with the /order/:orderId parameter route.
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/order")
	orders.GET("/list", h.List)
	orders.GET("/:orderId", h.Get)

	protected := rg.Group("/order", h.authMW)
	protected.POST("", h.Create)
	protected.PUT("/:orderId", h.Update)
	protected.DELETE("/:orderId", h.Delete)
}

// Create ingests an inbound order document, normalizes it and stores
// the result. Responds 201 with the normalized order.
func (h *OrderHandler) Create(c *gin.Context) {
	var payload ordering.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("Order created", zap.String("order_id", resp.OrderID))
	h.Created(c, resp)
}

// Get returns a single order by its normalized identifier
func (h *OrderHandler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns every stored order
func (h *OrderHandler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update replaces the order addressed by the path identifier with the
// validated payload, items included
func (h *OrderHandler) Update(c *gin.Context) {
	var payload ordering.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.bindingError(c, err)
		return
	}

	resp, err := h.service.Replace(c.Request.Context(), c.Param("orderId"), payload)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	logger.GetGinLogger(c).Info("Order replaced", zap.String("order_id", resp.OrderID))
	h.Success(c, resp)
}

// Delete removes the order and its items, responding 204 when it
// existed and 404 otherwise
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID := c.Param("orderId")

	existed, err := h.service.Delete(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !existed {
		h.NotFound(c, "Order not found")
		return
	}

	logger.GetGinLogger(c).Info("Order deleted", zap.String("order_id", orderID))
	h.NoContent(c)
}

// bindingError maps schema-level binding failures to a 400 with
// whatever field details the validator produced
func (h *OrderHandler) bindingError(c *gin.Context, err error) {
	if details := middleware.FormatValidationErrors(err); len(details) > 0 {
		h.ValidationError(c, details)
		return
	}
	h.BadRequest(c, "Invalid request body")
}
