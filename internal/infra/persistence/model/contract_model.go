package model

import (
	"time"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ContractModel mirrors the 'contracts' table. Party snapshots, occupancy and
// the identity and renewal sub-records are stored as JSON documents; terms are
// split into columns so the renewal conflict detector can filter on dates.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type ContractModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactID  uuid.UUID `gorm:"type:uuid;index"`
	LandlordID uuid.UUID `gorm:"type:uuid;not null;index"`
	TenantID   uuid.UUID `gorm:"type:uuid;index"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoomID     uuid.UUID `gorm:"type:uuid;not null;index:idx_contracts_room_status,priority:1"`
	TemplateID uuid.UUID `gorm:"type:uuid"`

	PartyA        datatypes.JSONType[entity.Person]      `gorm:"not null"`
	PartyB        datatypes.JSONType[entity.Person]      `gorm:"not null"`
	RoomSnapshot  datatypes.JSONType[map[string]any]     `gorm:"not null"`
	FieldValues   datatypes.JSONSlice[entity.FieldValue] `gorm:"not null"`
	TermIDs       datatypes.JSONSlice[uuid.UUID]         `gorm:"not null"`
	RegulationIDs datatypes.JSONSlice[uuid.UUID]         `gorm:"not null"`
	Roommates     datatypes.JSONSlice[entity.Person]     `gorm:"not null"`
	Bikes         datatypes.JSONSlice[entity.Bike]       `gorm:"not null"`
	Occupants     datatypes.JSONSlice[entity.Person]     `gorm:"not null"`

	ContractNo string           `gorm:"type:varchar(64)"`
	Price      *decimal.Decimal `gorm:"type:numeric(14,2)"`
	Deposit    *decimal.Decimal `gorm:"type:numeric(14,2)"`
	StartDate  *time.Time       `gorm:"index"`
	EndDate    *time.Time       `gorm:"index"`
	SignDate   *time.Time

	Status               string `gorm:"type:varchar(32);not null;index:idx_contracts_room_status,priority:2"`
	LandlordSignatureURL string `gorm:"type:text"`
	TenantSignatureURL   string `gorm:"type:text"`
	CompletedAt          *time.Time
	SentToTenantAt       *time.Time

	// Nullable documents, decoded by the repository mappers.
	IdentityVerification datatypes.JSON
	RenewalRequest       datatypes.JSON

	Version   int64 `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContractModel) TableName() string {
	return "contracts"
}
