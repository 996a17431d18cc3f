package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/RavanHash/PokemonReviewAPI/internal/auth/credential"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/domain"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/dto"
	"github.com/RavanHash/PokemonReviewAPI/internal/auth/service"
	autherror "github.com/RavanHash/PokemonReviewAPI/internal/errors"
	"github.com/RavanHash/PokemonReviewAPI/internal/logging"
	"github.com/RavanHash/PokemonReviewAPI/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.RegisterInput{
		Email:    "new@example.com",
		Username: "ash",
		Password: "Str0ng!pass",
	}

	createdUser := &domain.User{ID: "user-123", Email: input.Email, Username: input.Username}

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockCreds.EXPECT().Create(gomock.Any(), input.Email, input.Username, input.Password).Return(createdUser, nil)
	mockTokens.EXPECT().Issue(createdUser).Return("signed-token", nil)

	result, err := s.Register(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, result.Result)
	assert.Equal(t, "signed-token", result.Token)
	assert.Empty(t, result.Errors)
}

func TestAuthService_Register_EmailAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.RegisterInput{Email: "taken@example.com", Password: "Str0ng!pass"}
	existingUser := &domain.User{ID: "existing-id", Email: input.Email}

	// No Create and no Issue expectations: the rejection must be idempotent.
	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(existingUser, nil)

	result, err := s.Register(context.Background(), input)

	assert.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
	assert.Equal(t, []string{autherror.ErrEmailAlreadyExists.Error()}, result.Errors)
}

func TestAuthService_Register_PolicyViolations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.RegisterInput{Email: "new@example.com", Password: "weak"}
	policyErr := &credential.PolicyError{Violations: []string{
		"Passwords must be at least 6 characters.",
		"Passwords must have at least one digit ('0'-'9').",
	}}

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockCreds.EXPECT().Create(gomock.Any(), input.Email, input.Username, input.Password).Return(nil, policyErr)

	result, err := s.Register(context.Background(), input)

	// Every violation comes back as its own error string
	assert.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
	assert.Equal(t, policyErr.Violations, result.Errors)
}

func TestAuthService_Register_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	expectedError := errors.New("database error")
	mockCreds.EXPECT().FindByEmail(gomock.Any(), "x@example.com").Return(nil, expectedError)

	result, err := s.Register(context.Background(), dto.RegisterInput{Email: "x@example.com", Password: "Str0ng!pass"})

	assert.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, result)
}

func TestAuthService_Register_CreateInfrastructureError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.RegisterInput{Email: "new@example.com", Password: "Str0ng!pass"}
	expectedError := errors.New("insert failed")

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, nil)
	mockCreds.EXPECT().Create(gomock.Any(), input.Email, input.Username, input.Password).Return(nil, expectedError)

	result, err := s.Register(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.LoginInput{Email: "test@example.com", Password: "Str0ng!pass"}
	user := &domain.User{ID: "user-123", Email: input.Email}

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(user, nil)
	mockCreds.EXPECT().Verify(user, input.Password).Return(true)
	mockTokens.EXPECT().Issue(user).Return("signed-token", nil)

	result, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.True(t, result.Result)
	assert.Equal(t, "signed-token", result.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	mockCreds.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

	result, err := s.Login(context.Background(), dto.LoginInput{Email: "nobody@example.com", Password: "x"})

	assert.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
	assert.Equal(t, []string{autherror.ErrEmailNotFound.Error()}, result.Errors)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.LoginInput{Email: "test@example.com", Password: "wrong"}
	user := &domain.User{ID: "user-123", Email: input.Email}

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(user, nil)
	mockCreds.EXPECT().Verify(user, input.Password).Return(false)

	result, err := s.Login(context.Background(), input)

	assert.NoError(t, err)
	assert.False(t, result.Result)
	assert.Empty(t, result.Token)
	assert.Equal(t, []string{autherror.ErrInvalidCredentials.Error()}, result.Errors)
}

func TestAuthService_Login_IssueError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCreds := mocks.NewMockCredentialStore(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewAuthService(mockCreds, mockTokens, newTestLogger())

	input := dto.LoginInput{Email: "test@example.com", Password: "Str0ng!pass"}
	user := &domain.User{ID: "user-123", Email: input.Email}

	mockCreds.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(user, nil)
	mockCreds.EXPECT().Verify(user, input.Password).Return(true)
	mockTokens.EXPECT().Issue(user).Return("", errors.New("signing failed"))

	result, err := s.Login(context.Background(), input)

	assert.Error(t, err)
	assert.Nil(t, result)
}
