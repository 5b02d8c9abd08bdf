package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"social-pulse/internal/analytics"
	"social-pulse/internal/database"
	"social-pulse/internal/handlers"
	"social-pulse/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	logging.Init()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	// One database per platform: the crawlers write to separate stores.
	reddit, err := database.Connect(database.LoadConfig("REDDIT", "reddit_data"))
	if err != nil {
		slog.Error("failed to connect to reddit database", "err", err)
		os.Exit(1)
	}
	chans, err := database.Connect(database.LoadConfig("CHAN", "chan_crawler"))
	if err != nil {
		slog.Error("failed to connect to chan database", "err", err)
		os.Exit(1)
	}
	stores := database.Stores{Reddit: reddit, Chan: chans}

	setupGracefulShutdown(stores)
	setupServer(stores)
}

func setupGracefulShutdown(stores database.Stores) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		slog.Info("received shutdown signal, shutting down")

		database.Close(stores.Reddit)
		database.Close(stores.Chan)

		os.Exit(0)
	}()
}

func setupServer(stores database.Stores) {
	// Set Gin mode based on environment
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(handlers.RequestID())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Initialize handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analytics.NewService(stores))
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", analyticsHandler.HealthCheck)

	// Dashboard shell and assets
	r.Static("/static", "./static")
	r.StaticFile("/", "./static/index.html")
	r.StaticFile("/index.html", "./static/index.html")

	// Serve Markdown documentation as HTML
	r.GET("/doc/:doc", docsHandler.ServeMarkdownAsHTML)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/trend-data", analyticsHandler.GetTrendData)
		api.GET("/subreddits", analyticsHandler.GetSubreddits)
		api.GET("/toxicity-engagement", analyticsHandler.GetToxicityEngagement)
		api.GET("/sentiment-distribution", analyticsHandler.GetSentimentDistribution)
		api.GET("/media-metrics/*subreddit", analyticsHandler.GetMediaMetrics)
		api.GET("/platforms-metadata", analyticsHandler.GetPlatformsMetadata)
	}

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("failed to start server", "err", err)
		os.Exit(1)
	}
}
