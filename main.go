package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/SANJEEV-1208/caters-backend/config"
	"github.com/SANJEEV-1208/caters-backend/models"
	"github.com/SANJEEV-1208/caters-backend/router"
	"github.com/SANJEEV-1208/caters-backend/services"
	"github.com/SANJEEV-1208/caters-backend/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Redis is optional; without it the session state and the order
	// fallback cache run in process.
	var session services.SessionState
	var cache services.OrderCache
	redisClient, err := config.InitRedis()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		session = services.NewRedisSession(redisClient)
		cache = services.NewRedisOrderCache(redisClient)
		utils.InfoLogger.Println("Redis connected")
	} else {
		session = services.NewMemorySession()
		cache = services.NewMemoryOrderCache()
		utils.InfoLogger.Println("REDIS_ADDR not set, using in-memory session and cache")
	}

	r := router.SetupRouter(db, session, cache)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.CartLine{},
		&models.Order{},
		&models.OrderItem{},
		&models.Table{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
