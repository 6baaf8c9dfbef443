package contract

import (
	"strings"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
)

// OccupancyDetails is the structured detail of an OCCUPANCY_EXCEEDED error.
type OccupancyDetails struct {
	Occupants  int `json:"occupants"`
	MaxTenants int `json:"maxTenants"`
}

// SanitizeRoommates trims every entry and drops those without a name.
func SanitizeRoommates(roommates []entity.Person) []entity.Person {
	out := make([]entity.Person, 0, len(roommates))
	for _, p := range roommates {
		p = trimPerson(p)
		if p.Name == "" {
			continue
		}
		out = append(out, p)
	}

	return out
}

// SanitizeBikes trims every entry and drops those without a plate.
func SanitizeBikes(bikes []entity.Bike) []entity.Bike {
	out := make([]entity.Bike, 0, len(bikes))
	for _, b := range bikes {
		b.Plate = strings.TrimSpace(b.Plate)
		b.Color = strings.TrimSpace(b.Color)
		b.Brand = strings.TrimSpace(b.Brand)
		if b.Plate == "" {
			continue
		}
		out = append(out, b)
	}

	return out
}

// BuildOccupants returns partyB followed by roommates, keeping named entries only.
func BuildOccupants(partyB entity.Person, roommates []entity.Person) []entity.Person {
	occupants := make([]entity.Person, 0, len(roommates)+1)
	if strings.TrimSpace(partyB.Name) != "" {
		occupants = append(occupants, partyB)
	}
	for _, p := range roommates {
		if strings.TrimSpace(p.Name) != "" {
			occupants = append(occupants, p)
		}
	}

	return occupants
}

// CheckOccupancy rejects more occupants than the room allows.
// A room with maxTenants <= 0 has no cap.
func CheckOccupancy(occupants []entity.Person, room *entity.Room) error {
	if room == nil || room.MaxTenants <= 0 || len(occupants) <= room.MaxTenants {
		return nil
	}

	return domainerrors.ErrOccupancyExceeded.
		WithMessagef("room allows at most %d occupants, got %d", room.MaxTenants, len(occupants)).
		WithDetails(OccupancyDetails{Occupants: len(occupants), MaxTenants: room.MaxTenants})
}

func trimPerson(p entity.Person) entity.Person {
	p.Name = strings.TrimSpace(p.Name)
	p.IDNumber = strings.TrimSpace(p.IDNumber)
	p.IDIssuedDate = strings.TrimSpace(p.IDIssuedDate)
	p.IDIssuedPlace = strings.TrimSpace(p.IDIssuedPlace)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	if s, ok := p.DOB.(string); ok {
		p.DOB = strings.TrimSpace(s)
	}
	if s, ok := p.Address.(string); ok {
		p.Address = strings.TrimSpace(s)
	}

	return p
}
