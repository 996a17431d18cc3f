package domain

//go:generate mockgen -destination=../../mocks/mock_pokemon_repository.go -package=mocks github.com/RavanHash/PokemonReviewAPI/internal/pokemon/domain PokemonRepository

import "context"

// PokemonRepository is the read-only storage surface for pokemons and their
// review ratings.
type PokemonRepository interface {
	GetAll(ctx context.Context) ([]Pokemon, error)
	GetByID(ctx context.Context, id int) (*Pokemon, error)
	Exists(ctx context.Context, id int) (bool, error)
	GetRating(ctx context.Context, id int) (float64, error)
}
