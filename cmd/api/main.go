package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"planet-cred-api/config"
	"planet-cred-api/middleware"
	"planet-cred-api/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	// Initialize database
	config.InitDB()

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Security headers
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	router.Use(middleware.CORSMiddleware())

	// Register /logs route early (before 404 catch-all in SetupRoutes)
	router.GET("/logs", func(c *gin.Context) {
		accessToken := os.Getenv("LOG_ACCESS_TOKEN")
		if accessToken == "" || c.Query("token") != accessToken {
			c.JSON(401, gin.H{"error": "Unauthorized"})
			return
		}

		logData, err := os.ReadFile(config.LogFilePath())
		if err != nil {
			c.JSON(500, gin.H{"error": "Unable to read log"})
			return
		}

		c.Data(200, "text/plain; charset=utf-8", logData)
	})

	routes.SetupRoutes(router)

	// Create storage directory if not exists
	storagePath := os.Getenv("STORAGE_PATH")
	if storagePath == "" {
		storagePath = "./uploads"
	}
	if err := os.MkdirAll(storagePath, os.ModePerm); err != nil {
		log.Printf("Warning: Failed to create storage directory: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
