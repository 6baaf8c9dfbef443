package context

import (
	"context"

	"rentflow/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyActor stores the authenticated caller.
const KeyActor ContextKey = "actor"

// SetActor stores the authenticated caller on both the echo context and the request context.
func SetActor(c echo.Context, actor entity.Actor) {
	c.Set(string(KeyActor), actor)
	c.SetRequest(c.Request().WithContext(WithActor(c.Request().Context(), actor)))
}

// GetActor returns the authenticated caller of the request.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(entity.Actor)

	return actor, ok
}

// WithActor returns a new context with the caller.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, KeyActor, actor)
}

// ActorFrom returns the caller stored in ctx.
func ActorFrom(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(KeyActor).(entity.Actor)

	return actor, ok
}
