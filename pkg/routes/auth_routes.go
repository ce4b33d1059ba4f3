package routes

import (
	"github.com/focusbloom/focusbloom-backend/app/controllers"
	"github.com/focusbloom/focusbloom-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterAuthRoutes(app *fiber.App) {
	// Public routes
	app.Post("/auth/register", controllers.UserSignUp)
	app.Post("/auth/login", controllers.UserSignIn)
	app.Post("/auth/refresh", controllers.RefreshToken)

	// Protected routes
	auth := app.Group("/auth", middleware.JWTProtected())
	auth.Post("/logout", controllers.UserLogout)
	auth.Get("/me", controllers.GetCurrentUser)
}
