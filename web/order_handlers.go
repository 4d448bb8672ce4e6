package web

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-julio/models"
	"cafe-julio/services"

	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	CustomerEmail string              `json:"customerEmail"`
	Notes         string              `json:"notes"`
	FitMeal       bool                `json:"fitMeal"`
	Items         []services.CartLine `json:"items"`
}

type checkoutResponse struct {
	WhatsAppURL string `json:"whatsappUrl"`
	OrderID     int64  `json:"orderId,omitempty"`
	Warning     string `json:"warning,omitempty"`
}

// POST /api/checkout
// Validates, composes the WhatsApp message and persists the order
// summary. Persistence failure is a warning only: the café receives the
// order through WhatsApp, the database row is bookkeeping.
func (s *Server) handleCheckout(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.composer.Compose(services.CheckoutInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
		FitMeal:       req.FitMeal,
		Cart:          services.NewCartFromLines(req.Items),
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg, "field": verr.Field})
			return
		}
		s.log.Error("compose checkout", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
		return
	}

	resp := checkoutResponse{WhatsAppURL: res.WhatsAppURL}
	orderID, err := services.CreateOrder(c.Request.Context(), res.Order)
	if err != nil {
		s.log.Error("persist order", "error", err)
		resp.Warning = "Pedido não pôde ser registrado, mas será enviado via WhatsApp"
	} else {
		resp.OrderID = orderID
		s.notifyOrderCreated(orderID, res.Message)
	}

	c.JSON(http.StatusOK, resp)
}

// notifyOrderCreated pushes the order to the barista chat when the
// message bot is configured. Fire and forget.
func (s *Server) notifyOrderCreated(orderID int64, message string) {
	if s.notifier == nil {
		return
	}
	go func() {
		if err := s.notifier.OrderCreated(orderID, message); err != nil {
			s.log.Error("notify order", "order_id", orderID, "error", err)
		}
	}()
}

type createOrderRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	TotalPrice    int64  `json:"totalPrice" binding:"min=0"`
	Notes         string `json:"notes"`
}

// POST /api/orders — bare summary insert, no messaging side effect.
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := services.CreateOrder(c.Request.Context(), models.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		TotalPrice:    req.TotalPrice,
		Notes:         req.Notes,
	})
	if err != nil {
		s.log.Error("create order", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "could not save order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": id})
}

// GET /api/orders/:id — null for an unknown id, matching the original
// lookup behavior.
func (s *Server) handleGetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	order, err := services.GetOrderByID(c.Request.Context(), id)
	if err != nil {
		s.log.Error("get order", "order_id", id, "error", err)
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, order)
}
