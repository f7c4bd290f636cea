package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/auth"
	"forecast-market/internal/services"
)

type MarketHandler struct {
	exchange *services.ExchangeService
}

func NewMarketHandler(exchange *services.ExchangeService) *MarketHandler {
	return &MarketHandler{exchange: exchange}
}

// GetMarkets returns all markets. Order is unspecified.
func (h *MarketHandler) GetMarkets(c *gin.Context) {
	markets := h.exchange.Markets()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    markets,
		"count":   len(markets),
	})
}

// GetMarketByID returns a specific market
func (h *MarketHandler) GetMarketByID(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	market, ok := h.exchange.Market(marketID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Market not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    market,
	})
}

// CreateMarket creates a new market awaiting validation
func (h *MarketHandler) CreateMarket(c *gin.Context) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
		Category    string `json:"category"`
		CloseDate   uint64 `json:"close_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.exchange.CreateMarket(req.Title, req.Description, req.Category, req.CloseDate, principal)
	if err != nil {
		if services.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create market"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"market_id": id,
	})
}
