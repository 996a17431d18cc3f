package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/RavanHash/PokemonReviewAPI/internal/dbx"
	"github.com/RavanHash/PokemonReviewAPI/internal/pokemon/domain"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetAll(ctx context.Context) ([]domain.Pokemon, error) {
	query := `
		SELECT id, name, birth_date
		FROM pokemons
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemons: %w", err)
	}
	defer rows.Close()

	var pokemons []domain.Pokemon
	for rows.Next() {
		var p domain.Pokemon
		if err := rows.Scan(&p.ID, &p.Name, &p.BirthDate); err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		pokemons = append(pokemons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pokemons: %w", err)
	}

	return pokemons, nil
}

// GetByID returns the pokemon with the given id, or (nil, nil) when no such
// pokemon exists.
func (r *PostgresRepository) GetByID(ctx context.Context, id int) (*domain.Pokemon, error) {
	query := `
		SELECT id, name, birth_date
		FROM pokemons
		WHERE id = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, id)

	var p domain.Pokemon
	err := row.Scan(&p.ID, &p.Name, &p.BirthDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pokemon by id: %w", err)
	}

	return &p, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM pokemons WHERE id = $1);`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pokemon existence: %w", err)
	}

	return exists, nil
}

// GetRating returns the arithmetic mean of the pokemon's review ratings.
// A pokemon with no reviews rates 0, never a division error.
func (r *PostgresRepository) GetRating(ctx context.Context, id int) (float64, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE pokemon_id = $1;
	`

	var rating float64
	if err := r.db.QueryRow(ctx, query, id).Scan(&rating); err != nil {
		return 0, fmt.Errorf("failed to get pokemon rating: %w", err)
	}

	return rating, nil
}
