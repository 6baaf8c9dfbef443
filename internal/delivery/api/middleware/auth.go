package middleware

import (
	"strings"

	deliverycontext "rentflow/internal/delivery/context"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the bearer token into the request's actor.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return domainerrors.ErrUnauthorized.WithMessagef("authorization header is missing")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WithMessagef("authorization header must be a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return domainerrors.ErrUnauthorized.WithMessagef("invalid or expired access token")
		}

		actor := entity.Actor{
			ID:          claims.UserID,
			Roles:       entity.RolesFromStrings(claims.Roles),
			BuildingIDs: claims.BuildingIDs,
		}
		if len(actor.Roles) == 0 {
			return domainerrors.ErrForbidden.WithMessagef("token carries no known role")
		}

		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// RequireRole allows the request through when the actor holds any of roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			for _, role := range roles {
				if actor.Roles.Contains(role) {
					return next(c)
				}
			}

			return domainerrors.ErrForbidden
		}
	}
}
