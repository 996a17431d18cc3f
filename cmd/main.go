package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/RavanHash/PokemonReviewAPI/config"
	"github.com/RavanHash/PokemonReviewAPI/db"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/credential"
	authhandler "github.com/RavanHash/PokemonReviewAPI/internal/auth/handler"
	authrepo "github.com/RavanHash/PokemonReviewAPI/internal/auth/repository/postgres"
	authservice "github.com/RavanHash/PokemonReviewAPI/internal/auth/service"
	"github.com/RavanHash/PokemonReviewAPI/internal/logging"
	pokemonhandler "github.com/RavanHash/PokemonReviewAPI/internal/pokemon/handler"
	pokemonrepo "github.com/RavanHash/PokemonReviewAPI/internal/pokemon/repository/postgres"
	pokemonservice "github.com/RavanHash/PokemonReviewAPI/internal/pokemon/service"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Error(ctx, "migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error(ctx, "database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	userRepo := authrepo.NewPostgresRepository(dbPool)
	credStore := credential.NewStore(userRepo)
	tokenService := authservice.NewTokenService(
		cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenExpiryMin, cfg.IsProduction())
	authService := authservice.NewAuthService(credStore, tokenService, logger.With("component", "auth"))
	authHandler := authhandler.NewAuthHandler(authService)

	pokemonRepo := pokemonrepo.NewPostgresRepository(dbPool)
	pokemonService := pokemonservice.NewPokemonService(pokemonRepo)
	pokemonHandler := pokemonhandler.NewPokemonHandler(pokemonService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	authhandler.RegisterRoutes(app, authHandler)
	pokemonhandler.RegisterRoutes(app, pokemonHandler, authhandler.RequireAuth(tokenService))

	logger.Info(ctx, "starting server", "port", cfg.Port, "env", cfg.Env)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}
