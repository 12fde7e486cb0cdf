package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/arcbrain/arcbrain/pkg/arcbrain/analytics"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/collaboration"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/config"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/database"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/decisions"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/identity"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/models"
	"github.com/arcbrain/arcbrain/pkg/arcbrain/templates"

	_ "github.com/arcbrain/arcbrain/api/swagger"
)

// @title Arc Brain API
// @version 1.0
// @description Decision intelligence backend: structured decisions, canned AI analysis, templates, analytics and per-decision collaboration.

// @contact.name Arc Brain Support
// @contact.url https://github.com/arcbrain/arcbrain

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg := config.Load()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := models.AutoMigrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Set up Gin router
	r := gin.Default()

	// Permissive CORS: any origin, method and header
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Root greeting
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Arc Brain - Decision Intelligence Platform API",
		})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")
	api.Use(identity.Middleware())
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "healthy",
				"timestamp": time.Now().UTC(),
			})
		})

		decisionsHandler := decisions.NewHandler(database.GetDB())
		decisionsHandler.RegisterRoutes(api)

		templatesHandler := templates.NewHandler(database.GetDB())
		templatesHandler.RegisterRoutes(api)

		analyticsHandler := analytics.NewHandler(database.GetDB())
		analyticsHandler.RegisterRoutes(api)

		collaborationHandler := collaboration.NewHandler(database.GetDB())
		collaborationHandler.RegisterRoutes(api)
	}

	log.Printf("Starting Arc Brain server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
