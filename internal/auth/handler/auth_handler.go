package handler

import (
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/dto"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/service"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if errs := input.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(errs...))
	}

	result, err := h.authService.Register(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	if !result.Result {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid input",
		})
	}

	if errs := input.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure(errs...))
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	if !result.Result {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
