package routes

import (
	"github.com/focusbloom/focusbloom-backend/app/controllers"
	"github.com/focusbloom/focusbloom-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
)

func RegisterTaskRoutes(app *fiber.App) {
	tasks := app.Group("/tasks", middleware.JWTProtected())
	tasks.Post("/", controllers.CreateTask)
	tasks.Get("/", controllers.GetTasks)
	tasks.Get("/:id", controllers.GetTaskByID)
	tasks.Put("/:id", controllers.UpdateTask)
	tasks.Patch("/:id/status", controllers.UpdateTaskStatus)
	tasks.Delete("/:id", controllers.DeleteTask)
	tasks.Get("/:id/pomodoros", controllers.GetTaskPomodoros)

	pomodoros := app.Group("/pomodoros", middleware.JWTProtected())
	pomodoros.Post("/", controllers.CreatePomodoro)
	pomodoros.Get("/", controllers.GetPomodoros)
	pomodoros.Patch("/:id/start", controllers.StartPomodoro)
	pomodoros.Patch("/:id/complete", controllers.CompletePomodoro)
	pomodoros.Patch("/:id/interrupt", controllers.InterruptPomodoro)
	pomodoros.Patch("/:id/notes", controllers.UpdatePomodoroNotes)
}
