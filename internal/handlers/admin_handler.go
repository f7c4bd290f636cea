package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/auth"
	"forecast-market/internal/services"
)

// AdminHandler exposes the market lifecycle transitions. Transitions are the
// only mutations a market's status ever sees; they never touch shares,
// liquidity or volume.
type AdminHandler struct {
	exchange        *services.ExchangeService
	adminPrincipals map[string]bool
}

func NewAdminHandler(exchange *services.ExchangeService, adminPrincipals []string) *AdminHandler {
	admins := make(map[string]bool, len(adminPrincipals))
	for _, p := range adminPrincipals {
		admins[p] = true
	}
	return &AdminHandler{exchange: exchange, adminPrincipals: admins}
}

// AdminMiddleware rejects callers whose principal is not in the configured
// admin list.
func (h *AdminHandler) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := auth.GetPrincipal(c)
		if !ok || !h.adminPrincipals[string(principal)] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ApproveMarket moves a pending market to active
func (h *AdminHandler) ApproveMarket(c *gin.Context) {
	h.transition(c, func(id uint64) error {
		return h.exchange.ApproveMarket(id)
	}, "Market approved")
}

// CloseMarket closes an active market
func (h *AdminHandler) CloseMarket(c *gin.Context) {
	h.transition(c, func(id uint64) error {
		return h.exchange.CloseMarket(id)
	}, "Market closed")
}

// ResolveMarket assigns the final outcome to a closed market
func (h *AdminHandler) ResolveMarket(c *gin.Context) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	var req struct {
		Outcome *bool `json:"outcome" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.exchange.ResolveMarket(marketID, *req.Outcome); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Market resolved",
	})
}

func (h *AdminHandler) transition(c *gin.Context, apply func(uint64) error, message string) {
	marketID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid market id"})
		return
	}

	if err := apply(marketID); err != nil {
		respondTransitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func respondTransitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMarketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update market"})
	}
}
