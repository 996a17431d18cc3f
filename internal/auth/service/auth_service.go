package service

import (
	"context"
	"errors"

	"github.com/RavanHash/PokemonReviewAPI/internal/auth/credential"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/domain"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/dto"
	autherror "github.com/RavanHash/PokemonReviewAPI/internal/errors"
	"github.com/RavanHash/PokemonReviewAPI/internal/logging"
)

// AuthService orchestrates registration and login against the credential
// store and the token issuer.
type AuthService struct {
	creds  domain.CredentialStore
	tokens TokenGenerator
	logger logging.Logger
}

func NewAuthService(creds domain.CredentialStore, tokens TokenGenerator, logger logging.Logger) *AuthService {
	return &AuthService{
		creds:  creds,
		tokens: tokens,
		logger: logger,
	}
}

// Register creates a new credential record and issues a token for it.
// Business failures (duplicate email, password policy) land in the returned
// AuthResult; only infrastructure failures come back as an error.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResult, error) {
	existingUser, err := s.creds.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return dto.Failure(autherror.ErrEmailAlreadyExists.Error()), nil
	}

	user, err := s.creds.Create(ctx, input.Email, input.Username, input.Password)
	if err != nil {
		var policyErr *credential.PolicyError
		if errors.As(err, &policyErr) {
			// Policy violations are non-sensitive; report each one.
			return dto.Failure(policyErr.Violations...), nil
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)

	return dto.Success(token), nil
}

// Login verifies the password for the given email and issues a fresh token.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResult, error) {
	user, err := s.creds.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return dto.Failure(autherror.ErrEmailNotFound.Error()), nil
	}

	if !s.creds.Verify(user, input.Password) {
		return dto.Failure(autherror.ErrInvalidCredentials.Error()), nil
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "user_id", user.ID)

	return dto.Success(token), nil
}
