package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/auth"
	"forecast-market/internal/services"
)

type CommentHandler struct {
	exchange *services.ExchangeService
}

func NewCommentHandler(exchange *services.ExchangeService) *CommentHandler {
	return &CommentHandler{exchange: exchange}
}

// AddComment posts a comment on a market
func (h *CommentHandler) AddComment(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.exchange.AddComment(marketID, req.Content, principal)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"comment_id": id,
	})
}

// GetMarketComments returns all comments for a market in append order
func (h *CommentHandler) GetMarketComments(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	comments := h.exchange.MarketComments(marketID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    comments,
		"count":   len(comments),
	})
}
