package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	auth := app.Group("/api/Authentication")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
}
