package handlers

import (
	"net/http"

	"frontdesk/models"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListOrdersHandler handles GET /api/orders.
func (h *DeskHandler) ListOrdersHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.Service.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateOrderHandler handles POST /api/orders.
func (h *DeskHandler) CreateOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order payload", "details": bindingErrorMessage(err)})
		return
	}

	id, err := h.Service.CreateOrder(c.Request.Context(), order)
	if err != nil {
		logger.Error("Failed to create order", zap.String("phone", order.Phone), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "ok": true})
}
