package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/RavanHash/PokemonReviewAPI/internal/auth/domain UserRepository,CredentialStore

import "context"

// UserRepository persists user identity records.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// CredentialStore owns password hashing, verification and user record
// persistence. Create enforces the password policy and reports every
// violation it finds.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, email, username, password string) (*User, error)
	Verify(user *User, password string) bool
}
