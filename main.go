package main

import (
	"context"
	"log"
	"os"

	"shelfwise/cache"
	"shelfwise/config"
	"shelfwise/database"
	"shelfwise/handlers"
	"shelfwise/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Set up the application configuration
	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	config.AppConfig.SearchAPIKey = os.Getenv("SERPAPI_KEY")
	config.AppConfig.VoiceAPIKey = os.Getenv("VOICE_API_KEY")
	config.AppConfig.VoiceBaseURL = os.Getenv("VOICE_BASE_URL")
	config.AppConfig.VoiceAgentID = os.Getenv("VOICE_AGENT_ID")
	config.AppConfig.RedisAddr = os.Getenv("REDIS_ADDR")
	config.AppConfig.RedisPassword = os.Getenv("REDIS_PASSWORD")

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	// Supplier search cache: Redis when configured, no-op otherwise.
	if config.AppConfig.RedisAddr != "" {
		redisCache := cache.NewRedisSearchCache(config.AppConfig.RedisAddr, config.AppConfig.RedisPassword, 0)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Printf("Redis ping failed, search caching disabled: %v", err)
		} else {
			handlers.SearchCache = redisCache
			defer redisCache.Close()
		}
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 16 * 1024 * 1024, // shelf photos arrive base64-encoded
	})

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
