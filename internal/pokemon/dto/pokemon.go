package dto

import (
	"time"

	"github.com/RavanHash/PokemonReviewAPI/internal/pokemon/domain"
)

type PokemonOutput struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	BirthDate time.Time `json:"birthDate"`
}

func FromDomain(p *domain.Pokemon) *PokemonOutput {
	return &PokemonOutput{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
	}
}

func FromDomainList(pokemons []domain.Pokemon) []PokemonOutput {
	out := make([]PokemonOutput, 0, len(pokemons))
	for i := range pokemons {
		out = append(out, *FromDomain(&pokemons[i]))
	}
	return out
}
