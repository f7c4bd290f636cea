package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/models"
	"forecast-market/internal/services"
)

type UserHandler struct {
	exchange *services.ExchangeService
}

func NewUserHandler(exchange *services.ExchangeService) *UserHandler {
	return &UserHandler{exchange: exchange}
}

// GetProfile returns the profile for a principal
func (h *UserHandler) GetProfile(c *gin.Context) {
	principal := c.Param("principal")
	if principal == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Principal required"})
		return
	}

	profile, ok := h.exchange.UserProfile(models.Principal(principal))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// GetLeaderboard returns the top 20 profiles by XP
func (h *UserHandler) GetLeaderboard(c *gin.Context) {
	users := h.exchange.Leaderboard()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"count":   len(users),
	})
}
