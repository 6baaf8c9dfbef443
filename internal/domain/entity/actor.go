package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a use case, resolved once per request.
type Actor struct {
	ID          uuid.UUID   // Subject of the access token.
	Roles       Roles       // Granted roles.
	BuildingIDs []uuid.UUID // Buildings a staff member is assigned to.
}

// IsAdmin reports whether the actor bypasses ownership checks.
func (a Actor) IsAdmin() bool {
	return a.Roles.Contains(RoleAdmin)
}

// CanManageBuilding reports whether the actor may act as landlord for buildingID
// when the building is owned by landlordID.
func (a Actor) CanManageBuilding(landlordID, buildingID uuid.UUID) bool {
	if a.IsAdmin() {
		return true
	}
	if a.Roles.Contains(RoleLandlord) && a.ID == landlordID {
		return true
	}

	return a.Roles.Contains(RoleStaff) && slices.Contains(a.BuildingIDs, buildingID)
}

// CanActAsLandlord reports whether the actor may perform landlord-side operations on c.
func (a Actor) CanActAsLandlord(c *Contract) bool {
	if c == nil {
		return false
	}

	return a.CanManageBuilding(c.LandlordID, c.BuildingID)
}

// CanActAsTenant reports whether the actor is the tenant of c.
func (a Actor) CanActAsTenant(c *Contract) bool {
	return c != nil && c.TenantID != uuid.Nil && a.ID == c.TenantID
}

// CanView reports whether c is visible to the actor at all.
func (a Actor) CanView(c *Contract) bool {
	return a.CanActAsTenant(c) || a.CanActAsLandlord(c)
}
