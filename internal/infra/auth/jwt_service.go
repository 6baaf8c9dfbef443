// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"rentflow/config"
	"rentflow/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	accessTTL     = time.Hour
	defaultIssuer = "rentflow"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	issuer := cfg.Env.ServiceName
	if issuer == "" {
		issuer = defaultIssuer
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTTL,
		issuer:       issuer,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates an access token carrying the actor's roles and staff buildings.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string, buildingIDs []uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", errors.New("user ID is required")
	}

	now := s.now()
	claims := service.Claims{
		UserID:      userID,
		Roles:       roles,
		BuildingIDs: buildingIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and verifies its signature, issuer and expiry.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
