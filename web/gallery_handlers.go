package web

import (
	"net/http"
	"strconv"

	"cafe-julio/models"
	"cafe-julio/services"

	"github.com/gin-gonic/gin"
)

// GET /api/gallery — public; degrades to an empty list.
func (s *Server) handleGalleryList(c *gin.Context) {
	photos, err := services.ListGalleryPhotos(c.Request.Context())
	if err != nil {
		s.log.Error("list gallery", "error", err)
		photos = nil
	}
	if photos == nil {
		photos = []models.GalleryPhoto{}
	}
	c.JSON(http.StatusOK, photos)
}

type addPhotoRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ImageURL     string `json:"imageUrl" binding:"required"`
	ImageKey     string `json:"imageKey" binding:"required"`
	DisplayOrder int    `json:"displayOrder"`
}

// POST /api/gallery (barista only)
func (s *Server) handleGalleryAdd(c *gin.Context) {
	var req addPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := services.AddGalleryPhoto(c.Request.Context(), models.GalleryPhoto{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		ImageKey:     req.ImageKey,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		s.log.Error("add gallery photo", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photoId": id})
}

// DELETE /api/gallery/:id (barista only)
func (s *Server) handleGalleryDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}
	if err := services.DeleteGalleryPhoto(c.Request.Context(), id); err != nil {
		s.log.Error("delete gallery photo", "photo_id", id, "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
