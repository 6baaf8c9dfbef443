package model

import (
	"time"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ContractTemplateModel mirrors the 'contract_templates' table, one row per building.
type ContractTemplateModel struct {
	ID                   uuid.UUID                                `gorm:"type:uuid;primaryKey"`
	LandlordID           uuid.UUID                                `gorm:"type:uuid;not null;index"`
	BuildingID           uuid.UUID                                `gorm:"type:uuid;not null;uniqueIndex"`
	Fields               datatypes.JSONSlice[entity.TemplateField] `gorm:"not null"`
	DefaultTermIDs       datatypes.JSONSlice[uuid.UUID]           `gorm:"not null"`
	DefaultRegulationIDs datatypes.JSONSlice[uuid.UUID]           `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContractTemplateModel) TableName() string {
	return "contract_templates"
}

// RoomModel mirrors the 'rooms' table owned by the property module.
type RoomModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuildingID uuid.UUID       `gorm:"type:uuid;not null;index"`
	LandlordID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Floor      int             `gorm:"not null;default:0"`
	Area       float64         `gorm:"type:numeric(8,2)"`
	Price      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MaxTenants int             `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}

// AllModels lists every table managed by migrations and code generation.
func AllModels() []any {
	return []any{
		&ContractModel{},
		&ContractTemplateModel{},
		&RoomModel{},
	}
}
