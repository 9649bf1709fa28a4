package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the verified contents of an access token.
type Claims struct {
	AccountID uuid.UUID
	Role      string
	Type      string
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken signs a token for the account and returns its expiry.
	GenerateAccessToken(accountID uuid.UUID, role string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the signature, expiry and token type.
	ValidateToken(tokenString string) (*Claims, error)
}
