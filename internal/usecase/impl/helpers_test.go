package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2024, time.December, 1, 9, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return &d
}

func int64Ptr(v int64) *int64 {
	return &v
}

func fixtureTemplate(id, buildingID, landlordID uuid.UUID) *entity.ContractTemplate {
	return &entity.ContractTemplate{
		ID:         id,
		LandlordID: landlordID,
		BuildingID: buildingID,
		Fields: []entity.TemplateField{
			{PdfField: "landlord_name", Key: "A.name", Type: "text", Required: true},
			{PdfField: "tenant_name", Key: "B.name", Type: "text", Required: true},
			{PdfField: "tenant_id", Key: "B.idNumber", Type: "text", Required: true},
			{PdfField: "start", Key: "contract.startDate", Type: "date", Required: true},
		},
		DefaultTermIDs:       []uuid.UUID{uuid.New()},
		DefaultRegulationIDs: []uuid.UUID{uuid.New()},
	}
}

func fixtureContract(status entity.ContractStatus) *entity.Contract {
	return &entity.Contract{
		ID:         uuid.New(),
		LandlordID: uuid.New(),
		TenantID:   uuid.New(),
		BuildingID: uuid.New(),
		RoomID:     uuid.New(),
		TemplateID: uuid.New(),
		PartyA:     entity.Person{Name: "Trần Văn Chủ"},
		PartyB: entity.Person{
			Name:     "Nguyễn Văn A",
			IDNumber: "001098012345",
			DOB:      "15/03/1998",
			Address:  "12 Lý Thường Kiệt, Hà Nội",
		},
		Terms: entity.ContractTerms{
			StartDate: datePtr(2024, time.January, 1),
			EndDate:   datePtr(2024, time.December, 31),
		},
		RoomSnapshot: map[string]any{"name": "P.101"},
		Status:       status,
		Version:      3,
	}
}

func fixtureRoom(c *entity.Contract, maxTenants int) *entity.Room {
	return &entity.Room{
		ID:         c.RoomID,
		BuildingID: c.BuildingID,
		LandlordID: c.LandlordID,
		Name:       "P.101",
		Price:      decimal.NewFromInt(4500000),
		MaxTenants: maxTenants,
	}
}

func landlordOf(c *entity.Contract) entity.Actor {
	return entity.Actor{ID: c.LandlordID, Roles: entity.Roles{entity.RoleLandlord}}
}

func tenantOf(c *entity.Contract) entity.Actor {
	return entity.Actor{ID: c.TenantID, Roles: entity.Roles{entity.RoleTenant}}
}

func stranger() entity.Actor {
	return entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleLandlord}}
}

func eventOfType(eventType entity.EventType) any {
	return mock.MatchedBy(func(e *entity.ContractEvent) bool {
		return e != nil && e.Type == eventType
	})
}

// bumpVersion mimics the compare-and-set update of the repository.
func bumpVersion(_ context.Context, c *entity.Contract) error {
	c.Version++

	return nil
}
