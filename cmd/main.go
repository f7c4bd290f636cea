package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"forecast-market/internal/auth"
	"forecast-market/internal/config"
	"forecast-market/internal/database"
	"forecast-market/internal/handlers"
	"forecast-market/internal/jobs"
	"forecast-market/internal/llm"
	"forecast-market/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize JWT
	auth.InitJWT(cfg.App.JWTSecret)

	// Pick the insight generator
	var generator services.InsightGenerator
	if cfg.Model.Enabled {
		var client *llm.Client
		if cfg.Model.BaseURL != "" {
			client = llm.NewClient(cfg.Model.BaseURL, cfg.Model.APIKey, cfg.Model.Model)
		}
		generator = services.NewModelInsightGenerator(client)
		log.Printf("Using model-backed insight generator (%s)", cfg.Model.Model)
	} else {
		generator = services.NewTemplateInsightGenerator()
		log.Println("Using template insight generator")
	}

	// Initialize the exchange
	exchange := services.NewExchangeService(generator)

	// Restore the previous snapshot, or seed sample markets on first boot
	var snapshotService *services.SnapshotService
	if cfg.Snapshot.Driver != "off" {
		if err := database.Connect(cfg.Snapshot.Driver, cfg.Snapshot.DSN); err != nil {
			log.Fatalf("Failed to connect to snapshot store: %v", err)
		}
		if err := database.AutoMigrate(); err != nil {
			log.Fatalf("Failed to migrate snapshot store: %v", err)
		}
		snapshotService = services.NewSnapshotService(database.GetDB())

		snap, found, err := snapshotService.Load()
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
		if found {
			exchange.RestoreSnapshot(snap)
			log.Printf("Restored snapshot: %d markets, %d trades", len(snap.Markets), len(snap.Trades))
		} else {
			exchange.Seed()
			log.Println("No snapshot found, seeded sample markets")
		}
	} else {
		exchange.Seed()
		log.Println("Snapshot persistence disabled, seeded sample markets")
	}

	// Initialize services
	authService := services.NewAuthService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	marketHandler := handlers.NewMarketHandler(exchange)
	tradingHandler := handlers.NewTradingHandler(exchange)
	userHandler := handlers.NewUserHandler(exchange)
	commentHandler := handlers.NewCommentHandler(exchange)
	insightHandler := handlers.NewInsightHandler(exchange)
	adminHandler := handlers.NewAdminHandler(exchange, cfg.App.AdminPrincipals)

	// Start the expired-market closer (runs every minute)
	closerJob := jobs.NewMarketCloserJob(exchange)
	closerJob.Start(time.Minute)
	log.Println("Market closer job started")

	// Start the periodic snapshot job
	if snapshotService != nil {
		snapshotJob := jobs.NewSnapshotJob(exchange, snapshotService)
		snapshotJob.Start(cfg.Snapshot.Interval)
		log.Printf("Snapshot job started (every %s)", cfg.Snapshot.Interval)
	}

	// Set up Gin router
	router := gin.Default()

	// CORS middleware
	allowedOrigins := []string{
		"http://localhost:3000", // Local development
		"http://localhost:5173", // Vite dev server
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	// Add additional frontend URL from environment if provided
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Authentication routes (public)
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/challenge", authHandler.Challenge)
		authRoutes.POST("/wallet", authHandler.WalletLogin)
	}

	// Public market routes
	router.GET("/api/markets", marketHandler.GetMarkets)
	router.GET("/api/markets/:id", marketHandler.GetMarketByID)
	router.GET("/api/markets/:id/trades", tradingHandler.GetMarketTrades)
	router.GET("/api/markets/:id/comments", commentHandler.GetMarketComments)
	router.GET("/api/markets/:id/insight", insightHandler.GetInsight)
	router.GET("/api/leaderboard", userHandler.GetLeaderboard)
	router.GET("/api/users/:principal", userHandler.GetProfile)
	router.GET("/api/treasury", tradingHandler.GetTreasuryBalance)

	// API routes (protected)
	api := router.Group("/api")
	api.Use(auth.AuthMiddleware())
	{
		api.POST("/markets", marketHandler.CreateMarket)
		api.POST("/markets/:id/buy", tradingHandler.BuyShares)
		api.POST("/markets/:id/comments", commentHandler.AddComment)
	}

	// Admin routes (protected + admin only)
	admin := router.Group("/api/admin")
	admin.Use(auth.AuthMiddleware())
	admin.Use(adminHandler.AdminMiddleware())
	{
		admin.POST("/markets/:id/approve", adminHandler.ApproveMarket)
		admin.POST("/markets/:id/close", adminHandler.CloseMarket)
		admin.POST("/markets/:id/resolve", adminHandler.ResolveMarket)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Server.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with 5 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	// Final snapshot so no trades since the last interval are lost
	if snapshotService != nil {
		if err := snapshotService.Save(exchange.ExportSnapshot()); err != nil {
			log.Printf("Final snapshot save failed: %v", err)
		} else {
			log.Println("Final snapshot saved")
		}
	}

	log.Println("Server exited")
}
