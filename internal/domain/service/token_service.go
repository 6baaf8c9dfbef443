package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID      uuid.UUID   `json:"uid"`
	Roles       []string    `json:"roles"`
	BuildingIDs []uuid.UUID `json:"buildings,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates an access token for the given subject.
	GenerateAccessToken(userID uuid.UUID, roles []string, buildingIDs []uuid.UUID) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
