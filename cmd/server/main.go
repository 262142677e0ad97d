package main

import (
	"context"                         // context package is needed for Redis operations
	"payment_portal/internal/api"     // Custom package for API handlers
	"payment_portal/internal/cache"   // Optional users listing cache
	"payment_portal/internal/config"  // Custom package for configuration
	"payment_portal/internal/db"      // Database connection pool
	"payment_portal/internal/service" // Account service

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	// Connect to the database through a managed pool
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer db.Close(gdb)

	// Setup the optional Redis cache for the users listing
	var usersCache *cache.Cache
	if cfg.RedisAddr != "" && cfg.UsersCacheTTL > 0 {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		defer redisClient.Close()
		// Test Redis connection
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		usersCache = cache.New(redisClient, cfg.UsersCacheTTL)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	svc := service.NewAccountService(gdb, usersCache) // Account service
	r := api.NewRouter(svc, cfg)                      // Gin router with every route

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":        cfg.AppPort,
		"driver":      cfg.DBDriver,
		"users_cache": usersCache != nil,
	}).Info("Server starting")
	if err := r.Run(":" + cfg.AppPort); err != nil { // Start the server on port cfg.AppPort
		logrus.Fatalf("server stopped: %v", err)
	}
}
