package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/services"
)

type InsightHandler struct {
	exchange *services.ExchangeService
}

func NewInsightHandler(exchange *services.ExchangeService) *InsightHandler {
	return &InsightHandler{exchange: exchange}
}

// GetInsight returns the cached or freshly generated insight for a market.
// Generation failures are degraded inside the exchange, so this endpoint
// only errors for unknown markets.
func (h *InsightHandler) GetInsight(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	insight, ok := h.exchange.AIInsight(c.Request.Context(), marketID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Market not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    insight,
	})
}
