package handlers

import (
	"crypto/ed25519"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mr-tron/base58"

	"forecast-market/internal/auth"
	"forecast-market/internal/services"
)

// AuthHandler handles authentication endpoints. The wallet address doubles
// as the caller principal everywhere downstream.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Challenge issues a single-use nonce the wallet must sign to log in.
// POST /auth/challenge
func (h *AuthHandler) Challenge(c *gin.Context) {
	nonce, message := h.authService.IssueChallenge()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"nonce":   nonce,
		"message": message,
	})
}

// WalletLogin authenticates a caller by their wallet address and a signature
// over the challenge message, then issues a JWT carrying the principal.
// POST /auth/wallet
func (h *AuthHandler) WalletLogin(c *gin.Context) {
	var req struct {
		WalletAddress string `json:"wallet_address" binding:"required"`
		Nonce         string `json:"nonce" binding:"required"`
		Signature     string `json:"signature" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.WalletAddress) < 32 || len(req.WalletAddress) > 44 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet address"})
		return
	}

	if !h.authService.ConsumeChallenge(req.Nonce) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown or expired challenge"})
		return
	}

	message := []byte(h.authService.ChallengeMessage(req.Nonce))

	// Decode wallet address (public key) from Base58
	pubKey, err := base58.Decode(req.WalletAddress)
	if err != nil || len(pubKey) != ed25519.PublicKeySize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid public key format"})
		return
	}

	// Wallets return the signature as base58 or hex depending on the client
	sig, err := base58.Decode(req.Signature)
	if err != nil {
		sig, err = hex.DecodeString(req.Signature)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature format"})
			return
		}
	}

	if !ed25519.Verify(pubKey, message, sig) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	token, err := auth.GenerateToken(req.WalletAddress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     token,
		"principal": req.WalletAddress,
	})
}
