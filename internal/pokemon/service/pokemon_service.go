package service

import (
	"context"

	apperror "github.com/RavanHash/PokemonReviewAPI/internal/errors"
	"github.com/RavanHash/PokemonReviewAPI/internal/pokemon/domain"
	"github.com/RavanHash/PokemonReviewAPI/internal/pokemon/dto"
)

// PokemonService serves read-only pokemon lookups and the review-rating
// aggregate.
type PokemonService struct {
	repo domain.PokemonRepository
}

func NewPokemonService(repo domain.PokemonRepository) *PokemonService {
	return &PokemonService{repo: repo}
}

func (s *PokemonService) GetAll(ctx context.Context) ([]dto.PokemonOutput, error) {
	pokemons, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	return dto.FromDomainList(pokemons), nil
}

func (s *PokemonService) GetByID(ctx context.Context, id int) (*dto.PokemonOutput, error) {
	pokemon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pokemon == nil {
		return nil, apperror.ErrPokemonNotFound
	}

	return dto.FromDomain(pokemon), nil
}

// GetRating returns the mean review rating for the pokemon. Zero reviews
// rate 0.
func (s *PokemonService) GetRating(ctx context.Context, id int) (float64, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperror.ErrPokemonNotFound
	}

	return s.repo.GetRating(ctx, id)
}
