package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/hotross/HomeMaintenanceTracker/internal/config"
	"github.com/hotross/HomeMaintenanceTracker/internal/handlers"
	"github.com/hotross/HomeMaintenanceTracker/internal/middleware"
	"github.com/hotross/HomeMaintenanceTracker/internal/repository"
	"github.com/hotross/HomeMaintenanceTracker/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := repository.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := repository.NewGormStore(db)

	// Initialize JWT auth
	jwtAuth := middleware.NewJWTAuth(cfg.JWT.Secret, cfg.JWT.ExpireHour)

	// Initialize services
	userService := service.NewUserService(store)
	deviceService := service.NewDeviceService(store)
	consumableService := service.NewConsumableService(store)
	taskService := service.NewTaskService(store)
	accountService := service.NewAccountService(store)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, jwtAuth)
	deviceHandler := handlers.NewDeviceHandler(deviceService)
	consumableHandler := handlers.NewConsumableHandler(consumableService)
	taskHandler := handlers.NewTaskHandler(taskService)
	accountHandler := handlers.NewAccountHandler(userService, accountService, jwtAuth)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimit.PerSecond), cfg.RateLimit.Burst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected auth routes
		authProtected := v1.Group("/auth")
		authProtected.Use(jwtAuth.Middleware())
		{
			authProtected.GET("/me", authHandler.Me)
		}

		// Everything below requires a session; list and summary reads are
		// cached until the next successful mutation.
		readCache := gocache.New(time.Duration(cfg.Cache.TTLSeconds)*time.Second, time.Minute)

		// Device routes
		devices := v1.Group("/devices")
		devices.Use(jwtAuth.Middleware(), middleware.Cache(readCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second))
		{
			devices.GET("", deviceHandler.List)
			devices.POST("", deviceHandler.Create)
			devices.GET("/:id", deviceHandler.Get)
			devices.PATCH("/:id", deviceHandler.Update)
			devices.DELETE("/:id", deviceHandler.Delete)

			// Consumable routes (nested under devices)
			devices.GET("/:id/consumables", consumableHandler.ListByDevice)
			devices.POST("/:id/consumables", consumableHandler.Create)

			// Task routes (nested under devices)
			devices.GET("/:id/tasks", taskHandler.ListByDevice)
			devices.POST("/:id/tasks", taskHandler.Create)
		}

		// Consumable mutations by id
		consumables := v1.Group("/consumables")
		consumables.Use(jwtAuth.Middleware(), middleware.Cache(readCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second))
		{
			consumables.PATCH("/:id", consumableHandler.Update)
			consumables.DELETE("/:id", consumableHandler.Delete)
		}

		// Task routes
		tasks := v1.Group("/tasks")
		tasks.Use(jwtAuth.Middleware(), middleware.Cache(readCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second))
		{
			tasks.GET("", taskHandler.ListForUser)
			tasks.GET("/:id", taskHandler.Get)
			tasks.PATCH("/:id", taskHandler.Update)
			tasks.DELETE("/:id", taskHandler.Delete)
			tasks.POST("/:id/complete", taskHandler.Complete)
		}

		// Account routes
		account := v1.Group("/account")
		account.Use(jwtAuth.Middleware(), middleware.Cache(readCache, time.Duration(cfg.Cache.TTLSeconds)*time.Second))
		{
			account.PATCH("", accountHandler.Update)
			account.GET("/summary", accountHandler.Summary)
		}
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
