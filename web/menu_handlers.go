package web

import (
	"net/http"

	"cafe-julio/models"
	"cafe-julio/services"

	"github.com/gin-gonic/gin"
)

// GET /api/menu?category=daily[&all=1]
// Availability-filtered by default; all=1 includes unavailable items.
// Store failures degrade to an empty list so the public page renders.
func (s *Server) handleMenuByCategory(c *gin.Context) {
	category := c.Query("category")
	if !models.ValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}
	onlyAvailable := c.Query("all") != "1"
	items, err := services.ListMenuByCategory(c.Request.Context(), category, onlyAvailable)
	if err != nil {
		s.log.Error("list menu", "category", category, "error", err)
		items = nil
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /api/menu/all
func (s *Server) handleMenuAll(c *gin.Context) {
	items, err := services.ListAllMenu(c.Request.Context())
	if err != nil {
		s.log.Error("list all menu", "error", err)
		items = nil
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}
