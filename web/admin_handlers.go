package web

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-julio/models"
	"cafe-julio/services"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/items — full catalog including unavailable items.
func (s *Server) handleAdminItems(c *gin.Context) {
	items, err := services.ListAllMenu(c.Request.Context())
	if err != nil {
		s.log.Error("admin list items", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

type availabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /api/admin/items/:id/availability
func (s *Server) handleSetAvailability(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isAvailable is required"})
		return
	}

	if err := services.SetAvailability(c.Request.Context(), id, *req.IsAvailable); err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		case errors.Is(err, services.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		default:
			s.log.Error("set availability", "item_id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}

	s.log.Info("availability updated", "item_id", id, "available", *req.IsAvailable, "barista_id", sess.BaristaID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
