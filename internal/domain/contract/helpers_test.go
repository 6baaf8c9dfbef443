package contract

import (
	"time"

	"rentflow/internal/domain/entity"

	"github.com/google/uuid"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)

	return &d
}

func testTemplate() *entity.ContractTemplate {
	return &entity.ContractTemplate{
		ID: uuid.New(),
		Fields: []entity.TemplateField{
			{PdfField: "landlord_name", Key: "A.name", Type: "text", Required: true},
			{PdfField: "tenant_name", Key: "B.name", Type: "text", Required: true},
			{PdfField: "tenant_id", Key: "B.idNumber", Type: "text", Required: true},
			{PdfField: "start", Key: "contract.startDate", Type: "date", Required: true},
			{PdfField: "room_name", Key: "room.name", Type: "text", Required: true},
			{PdfField: "note", Key: "custom.note", Type: "text", Required: false},
		},
	}
}

func completeContract(status entity.ContractStatus) *entity.Contract {
	return &entity.Contract{
		ID:         uuid.New(),
		LandlordID: uuid.New(),
		TenantID:   uuid.New(),
		RoomID:     uuid.New(),
		PartyA:     entity.Person{Name: "Trần Văn Chủ"},
		PartyB:     entity.Person{Name: "Nguyễn Văn A", IDNumber: "001098012345", DOB: "15/03/1998"},
		Terms: entity.ContractTerms{
			StartDate: datePtr(2024, time.January, 1),
			EndDate:   datePtr(2024, time.December, 31),
		},
		RoomSnapshot: map[string]any{"name": "P.101"},
		Status:       status,
		Version:      1,
	}
}

func verified() *entity.IdentityVerification {
	return &entity.IdentityVerification{Status: entity.VerificationStatusVerified, Attempts: 1}
}
