package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Room is the rentable unit a contract is bound to.
type Room struct {
	ID         uuid.UUID
	BuildingID uuid.UUID
	LandlordID uuid.UUID
	Name       string
	Floor      int
	Area       float64
	Price      decimal.Decimal
	MaxTenants int // Zero or negative means no cap.
}

// Snapshot returns the attributes copied onto a contract at creation.
func (r *Room) Snapshot() map[string]any {
	return map[string]any{
		"id":         r.ID.String(),
		"name":       r.Name,
		"floor":      r.Floor,
		"area":       r.Area,
		"price":      r.Price.String(),
		"maxTenants": r.MaxTenants,
	}
}
