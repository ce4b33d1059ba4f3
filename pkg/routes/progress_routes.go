package routes

import (
	"github.com/focusbloom/focusbloom-backend/app/controllers"
	"github.com/focusbloom/focusbloom-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

// RegisterProgressRoutes wires the progress tracker surface: streaks,
// analytics snapshots, and the garden.
func RegisterProgressRoutes(app *fiber.App) {
	streak := app.Group("/streak", middleware.JWTProtected())
	streak.Get("/", controllers.GetStreak)
	streak.Post("/update", controllers.UpdateStreak)
	streak.Post("/check-break", controllers.CheckStreakBreak)
	streak.Get("/stats", controllers.GetStreakStats)

	analytics := app.Group("/analytics", middleware.JWTProtected())
	analytics.Get("/", controllers.GetAnalytics)
	analytics.Get("/insights", controllers.GetProductivityInsights)
	analytics.Post("/daily", controllers.UpdateDailyPerformance)
	analytics.Get("/daily/:date", controllers.GetDailyPerformance)

	garden := app.Group("/garden", middleware.JWTProtected())
	garden.Get("/", controllers.GetGarden)
	garden.Get("/flowers", controllers.GetFlowers)
	garden.Get("/stats", controllers.GetGardenStats)
}
