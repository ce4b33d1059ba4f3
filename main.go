package main

import (
	"log"
	"os"

	"github.com/focusbloom/focusbloom-backend/pkg/database"
	"github.com/focusbloom/focusbloom-backend/pkg/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/focusbloom/focusbloom-backend/app/services"
)

func main() {
	_ = godotenv.Load()

	app := fiber.New()

	allowOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FocusBloom API")
	})

	_, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	routes.RegisterAuthRoutes(app)
	routes.RegisterTaskRoutes(app)
	routes.RegisterProgressRoutes(app)
	routes.RegisterGoalRoutes(app)
	routes.RegisterLumiRoutes(app)

	services.StartCompletionDispatcher(database.DB)

	log.Fatal(app.Listen(":8000"))
}
