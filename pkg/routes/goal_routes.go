package routes

import (
	"github.com/focusbloom/focusbloom-backend/app/controllers"
	"github.com/focusbloom/focusbloom-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterGoalRoutes(app *fiber.App) {
	goals := app.Group("/goals", middleware.JWTProtected())
	goals.Post("/", controllers.CreateGoal)
	goals.Get("/", controllers.GetGoals)
	goals.Get("/type/:type", controllers.GetGoalsByType)
	goals.Post("/check", controllers.CheckGoals)
	goals.Put("/:id", controllers.UpdateGoal)
	goals.Patch("/:id/progress", controllers.UpdateGoalProgress)
	goals.Delete("/:id", controllers.DeleteGoal)

	kanban := app.Group("/kanban", middleware.JWTProtected())
	kanban.Get("/boards", controllers.GetBoards)
	kanban.Get("/boards/:id", controllers.GetBoard)
	kanban.Get("/goal/:goalId", controllers.GetBoardByGoal)
	kanban.Post("/move", controllers.MoveTask)
}
