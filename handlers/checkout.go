package handlers

import (
	"errors"
	"net/http"

	"frontdesk/services/desk"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler handles POST /api/checkout. It closes the active stay for
// the given room and phone and responds with the generated bill id.
func (h *DeskHandler) CheckoutHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Room  string `json:"room" binding:"required"`
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkout payload", "details": bindingErrorMessage(err)})
		return
	}

	billID, err := h.Service.Checkout(c.Request.Context(), req.Room, req.Phone)
	if err != nil {
		if errors.Is(err, desk.ErrActiveCheckinNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Active check-in not found"})
			return
		}
		logger.Error("Checkout failed", zap.String("room", req.Room), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "bill_id": billID})
}
