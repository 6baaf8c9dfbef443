package handler

import (
	deliverycontext "rentflow/internal/delivery/context"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func actorOf(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithMessagef("invalid %s", name)
	}

	return id, nil
}

// bind decodes and validates the request body into req.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessagef("malformed request body")
	}

	return c.Validate(req)
}
