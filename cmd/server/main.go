package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/globalwebwork/task-management-api/internal/config"
	"github.com/globalwebwork/task-management-api/internal/database"
	"github.com/globalwebwork/task-management-api/internal/handlers"
	"github.com/globalwebwork/task-management-api/internal/middleware"
	"github.com/globalwebwork/task-management-api/internal/repository"
	"github.com/globalwebwork/task-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to create indexes: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.GetDB(), cfg.StoreTimeout)
	taskRepo := repository.NewTaskRepository(database.GetDB(), cfg.StoreTimeout)

	// Initialize services
	tokenIssuer := services.NewTokenIssuer(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)
	analyticsService := services.NewAnalyticsService(taskRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenIssuer)
	taskHandler := handlers.NewTaskHandler(taskService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	userHandler := handlers.NewUserHandler(authService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoints
	r.GET("/health", handlers.Health)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/supabase/health", handlers.StoreHealth)

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/change-password", middleware.RequireAuth(tokenIssuer), authHandler.ChangePassword)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth(tokenIssuer))
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(middleware.RequireAuth(tokenIssuer))
		{
			analytics.GET("/dashboard", analyticsHandler.Dashboard)
		}

		// Suggestion feed (protected)
		ai := api.Group("/ai")
		ai.Use(middleware.RequireAuth(tokenIssuer))
		{
			ai.GET("/suggestions", analyticsHandler.Suggestions)
		}

		// Admin user directory (protected)
		api.GET("/users", middleware.RequireAuth(tokenIssuer), userHandler.ListUsers)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
