package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"forecast-market/internal/auth"
	"forecast-market/internal/services"
)

type TradingHandler struct {
	exchange *services.ExchangeService
}

func NewTradingHandler(exchange *services.ExchangeService) *TradingHandler {
	return &TradingHandler{exchange: exchange}
}

// BuyShares executes a share purchase for the authenticated caller
func (h *TradingHandler) BuyShares(c *gin.Context) {
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
		IsYes  *bool  `json:"is_yes" binding:"required"`
		Amount uint64 `json:"amount"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trade, err := h.exchange.BuyShares(marketID, *req.IsYes, req.Amount, principal)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrMarketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrMarketNotActive):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute trade"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":             true,
		"data":                trade,
		"implied_probability": impliedProbability(trade.Price),
	})
}

// GetMarketTrades returns all trades for a market in execution order
func (h *TradingHandler) GetMarketTrades(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	trades := h.exchange.MarketTrades(marketID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    trades,
		"count":   len(trades),
	})
}

// GetTreasuryBalance returns the accumulated trading fees
func (h *TradingHandler) GetTreasuryBalance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": h.exchange.TreasuryBalance(),
	})
}

// impliedProbability converts a millis price to a probability.
func impliedProbability(price uint64) decimal.Decimal {
	return decimal.NewFromInt(int64(price)).Div(decimal.NewFromInt(1000))
}
