package handler

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the pokemon endpoints behind the given auth
// middleware. The static /allPokemons route must be registered before the
// /:id routes.
func RegisterRoutes(app *fiber.App, h *PokemonHandler, requireAuth fiber.Handler) {
	pokemon := app.Group("/api/Pokemon", requireAuth)
	pokemon.Get("/allPokemons", h.GetAll)
	pokemon.Get("/:id", h.GetByID)
	pokemon.Get("/:id/rating", h.GetRating)
}
