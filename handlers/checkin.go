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

// ListCheckinsHandler handles GET /api/checkins.
func (h *DeskHandler) ListCheckinsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	items, err := h.Service.ListCheckins(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list check-ins", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if items == nil {
		items = []models.Checkin{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateCheckinHandler handles POST /api/checkins.
func (h *DeskHandler) CreateCheckinHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var checkin models.Checkin
	if err := c.ShouldBindJSON(&checkin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check-in payload", "details": bindingErrorMessage(err)})
		return
	}

	id, err := h.Service.CreateCheckin(c.Request.Context(), checkin)
	if err != nil {
		if errors.Is(err, desk.ErrRoomOccupied) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Room is already occupied"})
			return
		}
		logger.Error("Failed to create check-in", zap.String("room", checkin.Room), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "ok": true})
}
