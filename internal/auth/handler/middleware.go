package handler

import (
	"strings"

	"github.com/RavanHash/PokemonReviewAPI/internal/auth/service"
	"github.com/RavanHash/PokemonReviewAPI/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

// ClaimsContextKey is the fiber.Ctx locals key under which RequireAuth
// stores the verified token claims.
const ClaimsContextKey = "claims"

// RequireAuth gates a route group behind a valid bearer token. Missing,
// malformed, invalid or expired tokens all produce 401.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		prefix := constant.BearerScheme + " "

		if !strings.HasPrefix(authHeader, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or malformed authorization header",
			})
		}

		claims, err := tokens.VerifyAccessToken(strings.TrimPrefix(authHeader, prefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired token",
			})
		}

		c.Locals(ClaimsContextKey, claims)

		return c.Next()
	}
}
