package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"

	"github.com/AmoolyaSuneja/EduStream/catalog"
	"github.com/AmoolyaSuneja/EduStream/config"
	"github.com/AmoolyaSuneja/EduStream/middleware"
	"github.com/AmoolyaSuneja/EduStream/routes"
	"github.com/AmoolyaSuneja/EduStream/storage"
	"github.com/AmoolyaSuneja/EduStream/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize storage
	store, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Error initializing storage: %v", err)
	}
	defer store.Close()

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, store, catalog.Default(), cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

func openStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "sqlite":
		return storage.NewSQLiteStore(cfg.SQLitePath)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return storage.NewRedisStore(client), nil
	case "postgres":
		return storage.NewPostgresStore(cfg.DatabaseURL)
	default:
		return storage.NewMemoryStore(), nil
	}
}
