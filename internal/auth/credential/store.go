// Package credential implements the credential store: user record
// persistence plus password hashing, verification and policy enforcement.
package credential

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RavanHash/PokemonReviewAPI/internal/auth/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	repo domain.UserRepository
}

func NewStore(repo domain.UserRepository) *Store {
	return &Store{repo: repo}
}

// FindByEmail looks up a user by normalized email. A missing user is
// (nil, nil), not an error.
func (s *Store) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, NormalizeEmail(email))
}

// Create validates the password against the policy, hashes it and persists a
// new user record. Policy violations come back as a *PolicyError so the
// caller can surface each message individually.
func (s *Store) Create(ctx context.Context, email, username, password string) (*domain.User, error) {
	if violations := validatePassword(password); len(violations) > 0 {
		return nil, &PolicyError{Violations: violations}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        NormalizeEmail(email),
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Verify reports whether the password matches the user's stored hash.
func (s *Store) Verify(user *domain.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// NormalizeEmail makes duplicate-email detection case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
