package contract

import (
	"testing"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeRoommates(t *testing.T) {
	t.Parallel()

	got := SanitizeRoommates([]entity.Person{
		{Name: "  Lê Thị B  ", Phone: " 0901 "},
		{Name: "   ", IDNumber: "123"},
		{Name: "Phạm C", Address: "  Huế "},
	})

	require.Len(t, got, 2)
	assert.Equal(t, "Lê Thị B", got[0].Name)
	assert.Equal(t, "0901", got[0].Phone)
	assert.Equal(t, "Huế", got[1].Address)
}

func TestSanitizeBikes(t *testing.T) {
	t.Parallel()

	got := SanitizeBikes([]entity.Bike{{Plate: " 29A-123.45 ", Brand: " Honda "}, {Plate: "", Color: "red"}})

	assert.Equal(t, []entity.Bike{{Plate: "29A-123.45", Brand: "Honda"}}, got)
}

func TestBuildOccupants(t *testing.T) {
	t.Parallel()

	occupants := BuildOccupants(entity.Person{Name: "A"}, []entity.Person{{Name: "B"}, {Name: " "}})
	assert.Len(t, occupants, 2)

	assert.Len(t, BuildOccupants(entity.Person{}, []entity.Person{{Name: "B"}}), 1)
}

func TestCheckOccupancy(t *testing.T) {
	t.Parallel()

	room := &entity.Room{MaxTenants: 2}
	partyB := entity.Person{Name: "A"}

	accepted := BuildOccupants(partyB, []entity.Person{{Name: "B"}})
	assert.NoError(t, CheckOccupancy(accepted, room))

	rejected := BuildOccupants(partyB, []entity.Person{{Name: "B"}, {Name: "C"}})
	err := CheckOccupancy(rejected, room)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOccupancyExceeded))
	assert.Contains(t, err.Error(), "at most 2 occupants, got 3")

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Equal(t, OccupancyDetails{Occupants: 3, MaxTenants: 2}, appErr.Details())

	assert.NoError(t, CheckOccupancy(rejected, &entity.Room{MaxTenants: 0}))
	assert.NoError(t, CheckOccupancy(rejected, nil))
}
