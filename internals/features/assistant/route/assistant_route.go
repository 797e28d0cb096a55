package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hargaku_backend/internals/features/assistant/controller"
	"hargaku_backend/internals/middlewares"
)

func AssistantRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssistantController(db)
	assistant := api.Group("/assistant", middlewares.AssistantRateLimiter())
	assistant.Post("/chat", ctrl.Chat)
}
