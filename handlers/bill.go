package handlers

import (
	"errors"
	"net/http"

	"frontdesk/models"
	"frontdesk/services/desk"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListBillsHandler handles GET /api/bills.
func (h *DeskHandler) ListBillsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.Service.ListBills(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list bills", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.Bill{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// PayBillHandler handles POST /api/bills/:billID/pay.
func (h *DeskHandler) PayBillHandler(c *gin.Context) {
	logger := utils.GetLogger()
	billID := c.Param("billID")

	var req struct {
		Mode string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment payload", "details": bindingErrorMessage(err)})
		return
	}

	if err := h.Service.PayBill(c.Request.Context(), billID, req.Mode); err != nil {
		if errors.Is(err, desk.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to mark bill paid", zap.String("billId", billID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
