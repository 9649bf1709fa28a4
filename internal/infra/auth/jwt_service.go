// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"ledger/config"
	"ledger/internal/domain/service"
	"ledger/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenType = "access"

var (
	errMissingSecret    = errors.New("jwt access secret must be provided")
	errWrongTokenType   = errors.New("token is not an access token")
	errInvalidSubject   = errors.New("token subject is not an account id")
	errUnexpectedMethod = errors.New("unexpected signing method")
)

// jwtService implements service.TokenService with HS256 tokens.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	now          func() time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errMissingSecret
	}

	ttl := 7 * 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.AccessTokenTTL > 0 {
		ttl = cfg.Auth.AccessTokenTTL
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken signs an access token carrying the account id and role.
func (s *jwtService) GenerateAccessToken(accountID uuid.UUID, role string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)

	claims := tokenClaims{
		Role: role,
		Type: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign access token")
	}

	return token, expiresAt, nil
}

// ValidateToken parses the token and checks signature, expiry and type.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	parsed := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedMethod
		}

		return s.accessSecret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	if parsed.Type != accessTokenType {
		return nil, errWrongTokenType
	}

	accountID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return nil, errInvalidSubject
	}

	return &service.Claims{
		AccountID:        accountID,
		Role:             parsed.Role,
		Type:             parsed.Type,
		RegisteredClaims: parsed.RegisteredClaims,
	}, nil
}
