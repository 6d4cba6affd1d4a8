package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging

	"library_system/internal/api"        // Custom package for API handlers
	"library_system/internal/config"     // Custom package for configuration
	"library_system/internal/middleware" // Custom package for middleware
	"library_system/internal/service"    // Business services
	"library_system/internal/store"      // GORM-backed stores

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database. TranslateError lets the stores match
	// gorm.ErrDuplicatedKey for the membership unique index.
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Wire stores and services
	identity := service.NewIdentity(store.NewUserStore(db))
	catalog := service.NewCatalog(store.NewLibraryStore(db))
	memberships := service.NewMembership(store.NewMembershipStore(db), store.NewUserStore(db), store.NewLibraryStore(db))

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/user", api.RegisterHandler(identity, redisClient))      // Registration endpoint
	r.POST("/user/login", api.LoginHandler(identity, cfg.JWTSecret)) // Login endpoint

	// Public catalog routes
	r.GET("/libraries", api.ListLibrariesHandler(catalog, redisClient))             // List all libraries
	r.GET("/libraries/:id", api.GetLibraryHandler(catalog))                         // Show one library
	r.GET("/users/:user_id/libraries", api.ListUserLibrariesHandler(memberships, redisClient)) // Libraries a user belongs to

	// Authenticated routes
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.POST("/libraries", api.CreateLibraryHandler(catalog, redisClient))              // Create library endpoint
	authGroup.PUT("/libraries/:id", api.UpdateLibraryHandler(catalog, redisClient))           // Update library endpoint
	authGroup.POST("/libraries/:id/join", api.JoinLibraryHandler(memberships, redisClient))   // Join library endpoint
	authGroup.POST("/memberships", api.CreateMembershipHandler(memberships, redisClient))     // Direct membership creation
	authGroup.DELETE("/memberships/:library_id", api.LeaveLibraryHandler(memberships, redisClient)) // Leave library endpoint

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(identity))
	adminGroup.GET("/users", api.ListUsersHandler(identity, redisClient))        // List users endpoint
	adminGroup.DELETE("/users/:id", api.DeleteUserHandler(identity, redisClient)) // Delete user endpoint
	adminGroup.DELETE("/libraries/:id", api.DeleteLibraryHandler(catalog, redisClient)) // Delete library endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
