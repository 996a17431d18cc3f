package handler

import (
	"errors"

	apperror "github.com/RavanHash/PokemonReviewAPI/internal/errors"
	"github.com/RavanHash/PokemonReviewAPI/internal/pokemon/service"
	"github.com/gofiber/fiber/v2"
)

type PokemonHandler struct {
	pokemonService *service.PokemonService
}

func NewPokemonHandler(pokemonService *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{pokemonService: pokemonService}
}

func (h *PokemonHandler) GetAll(c *fiber.Ctx) error {
	pokemons, err := h.pokemonService.GetAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pokemons)
}

func (h *PokemonHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid pokemon id",
		})
	}

	pokemon, err := h.pokemonService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrPokemonNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pokemon)
}

func (h *PokemonHandler) GetRating(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid pokemon id",
		})
	}

	rating, err := h.pokemonService.GetRating(c.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrPokemonNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(rating)
}
