package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	e := echo.New()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()

	generated := GetRequestID(c)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)

	SetRequestID(c, "req-42")
	assert.Equal(t, "req-42", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestLogger(t *testing.T) {
	fallback := slog.Default()
	assert.Nil(t, GetLogger(context.Background()))
	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))

	scoped := fallback.With(slog.String("request_id", "r"))
	ctx := WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, GetLoggerOrDefault(ctx, fallback))
}

func TestActor(t *testing.T) {
	c := newEchoContext()

	_, ok := GetActor(c)
	assert.False(t, ok)

	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleTenant}}
	SetActor(c, actor)

	got, ok := GetActor(c)
	require.True(t, ok)
	assert.Equal(t, actor.ID, got.ID)

	fromCtx, ok := ActorFrom(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, actor.ID, fromCtx.ID)
}
