package routes

import (
	"github.com/focusbloom/focusbloom-backend/app/controllers"
	"github.com/focusbloom/focusbloom-backend/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterLumiRoutes(app *fiber.App) {
	lumi := app.Group("/lumi")
	lumi.Post("/chat", middleware.JWTProtected(), controllers.LumiChat)
	lumi.Get("/memory", middleware.JWTProtected(), controllers.GetLumiMemory)

	lumi.Get("/ws", websocket.New(func(c *websocket.Conn) {
		controllers.LumiWsHandler(c)
	}))
}
