package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/RavanHash/PokemonReviewAPI/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/RavanHash/PokemonReviewAPI/internal/auth/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Issue(user *domain.User) (string, error)
	VerifyAccessToken(tokenString string) (*JWTCustomClaims, error)
}

type TokenService struct {
	Secret   string
	Issuer   string
	Audience string
	Expiry   time.Duration

	// EnforceIssuerAudience must be set in production deployments; only
	// development and test configurations may relax it.
	EnforceIssuerAudience bool
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
}

func NewTokenService(secret, issuer, audience string, expiryMinutes int, enforceIssuerAudience bool) *TokenService {
	return &TokenService{
		Secret:                secret,
		Issuer:                issuer,
		Audience:              audience,
		Expiry:                time.Duration(expiryMinutes) * time.Minute,
		EnforceIssuerAudience: enforceIssuerAudience,
	}
}

// Issue signs a bearer token for the user. Every claim is derived from the
// user record at issuance time; the jti claim is a fresh UUID so two tokens
// for the same user are never bit-identical.
func (ts *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()

	claims := JWTCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ID:        uuid.New().String(),
			Issuer:    ts.Issuer,
			Audience:  jwt.ClaimStrings{ts.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// VerifyAccessToken parses and validates the given access token string.
// Signature and expiry are always checked; issuer and audience only when
// EnforceIssuerAudience is set.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*JWTCustomClaims, error) {
	var opts []jwt.ParserOption
	if ts.EnforceIssuerAudience {
		opts = append(opts, jwt.WithIssuer(ts.Issuer), jwt.WithAudience(ts.Audience))
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	}, opts...)

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
