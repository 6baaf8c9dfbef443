package entity

import (
	"time"

	"github.com/google/uuid"
)

// TemplateField describes one fillable field of a contract template.
// Key is either an explicit fieldValues key or a dotted path such as "B.idNumber".
type TemplateField struct {
	PdfField string `json:"pdfField"`
	Key      string `json:"key"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// ContractTemplate is the per-building template contracts are seeded from.
type ContractTemplate struct {
	ID                   uuid.UUID
	LandlordID           uuid.UUID
	BuildingID           uuid.UUID
	Fields               []TemplateField
	DefaultTermIDs       []uuid.UUID
	DefaultRegulationIDs []uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
