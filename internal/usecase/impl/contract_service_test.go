package impl

import (
	"context"
	"testing"
	"time"

	"rentflow/internal/domain/contract"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	mockRepo "rentflow/internal/mocks/repository"
	mockSvc "rentflow/internal/mocks/service"
	mockUsecase "rentflow/internal/mocks/usecase"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contractServiceFixture struct {
	svc          *contractService
	contractRepo *mockRepo.MockContractRepository
	templateRepo *mockRepo.MockTemplateRepository
	roomRepo     *mockRepo.MockRoomRepository
	qrService    *mockSvc.MockQRCodeService
	emitter      *mockUsecase.MockNotificationEmitter
}

func newContractServiceFixture(t *testing.T) *contractServiceFixture {
	f := &contractServiceFixture{
		contractRepo: mockRepo.NewMockContractRepository(t),
		templateRepo: mockRepo.NewMockTemplateRepository(t),
		roomRepo:     mockRepo.NewMockRoomRepository(t),
		qrService:    mockSvc.NewMockQRCodeService(t),
		emitter:      mockUsecase.NewMockNotificationEmitter(t),
	}

	svc, ok := NewContractService(ContractServiceParams{
		ContractRepo: f.contractRepo,
		TemplateRepo: f.templateRepo,
		RoomRepo:     f.roomRepo,
		QRService:    f.qrService,
		Emitter:      f.emitter,
		Logger:       testLogger(),
	}).(*contractService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	f.svc = svc

	return f
}

func TestContractService_Create_Success(t *testing.T) {
	f := newContractServiceFixture(t)
	ctx := context.Background()

	seed := fixtureContract(entity.ContractStatusDraft)
	room := fixtureRoom(seed, 2)
	tmpl := fixtureTemplate(uuid.New(), room.BuildingID, room.LandlordID)

	f.roomRepo.EXPECT().FindByID(ctx, room.ID).Return(room, nil)
	f.templateRepo.EXPECT().FindByBuilding(ctx, room.BuildingID).Return(tmpl, nil)
	f.contractRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Contract")).
		RunAndReturn(func(_ context.Context, c *entity.Contract) error {
			c.ID = uuid.New()
			c.Version = 1

			return nil
		})

	c, err := f.svc.Create(ctx, landlordOf(seed), usecase.CreateContractInput{
		TenantID: seed.TenantID,
		RoomID:   room.ID,
		PartyB:   &seed.PartyB,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusDraft, c.Status)
	assert.Equal(t, tmpl.ID, c.TemplateID)
	assert.Equal(t, tmpl.DefaultTermIDs, c.TermIDs)
	assert.Equal(t, room.BuildingID, c.BuildingID)
	assert.Equal(t, "P.101", c.RoomSnapshot["name"])
	require.NotNil(t, c.Terms.Price)
	assert.True(t, c.Terms.Price.Equal(room.Price))
	assert.Len(t, c.Occupants, 1)
	assert.Equal(t, int64(1), c.Version)
}

func TestContractService_Create_Rejections(t *testing.T) {
	seed := fixtureContract(entity.ContractStatusDraft)
	room := fixtureRoom(seed, 2)

	t.Run("other landlord", func(t *testing.T) {
		f := newContractServiceFixture(t)
		f.roomRepo.EXPECT().FindByID(mock.Anything, room.ID).Return(room, nil)

		_, err := f.svc.Create(context.Background(), stranger(), usecase.CreateContractInput{TenantID: seed.TenantID, RoomID: room.ID})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("room of another building", func(t *testing.T) {
		f := newContractServiceFixture(t)
		f.roomRepo.EXPECT().FindByID(mock.Anything, room.ID).Return(room, nil)

		_, err := f.svc.Create(context.Background(), landlordOf(seed), usecase.CreateContractInput{
			TenantID:   seed.TenantID,
			RoomID:     room.ID,
			BuildingID: uuid.New(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing template", func(t *testing.T) {
		f := newContractServiceFixture(t)
		f.roomRepo.EXPECT().FindByID(mock.Anything, room.ID).Return(room, nil)
		f.templateRepo.EXPECT().FindByBuilding(mock.Anything, room.BuildingID).Return(nil, repository.ErrTemplateNotFound)

		_, err := f.svc.Create(context.Background(), landlordOf(seed), usecase.CreateContractInput{TenantID: seed.TenantID, RoomID: room.ID})
		assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
	})

	t.Run("missing room", func(t *testing.T) {
		f := newContractServiceFixture(t)
		f.roomRepo.EXPECT().FindByID(mock.Anything, room.ID).Return(nil, repository.ErrRoomNotFound)

		_, err := f.svc.Create(context.Background(), landlordOf(seed), usecase.CreateContractInput{TenantID: seed.TenantID, RoomID: room.ID})
		assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
	})

	t.Run("missing tenant", func(t *testing.T) {
		f := newContractServiceFixture(t)

		_, err := f.svc.Create(context.Background(), landlordOf(seed), usecase.CreateContractInput{RoomID: room.ID})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestContractService_Get_HidesForeignContracts(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusDraft)
	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

	_, err := f.svc.Get(context.Background(), stranger(), c.ID)
	assert.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestContractService_Get_StaffOfBuilding(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusDraft)
	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

	staff := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleStaff}, BuildingIDs: []uuid.UUID{c.BuildingID}}
	got, err := f.svc.Get(context.Background(), staff, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestContractService_List_MergesAndDeduplicates(t *testing.T) {
	f := newContractServiceFixture(t)
	owned := fixtureContract(entity.ContractStatusDraft)
	owned.CreatedAt = fixedNow.Add(-time.Hour)
	managed := fixtureContract(entity.ContractStatusDraft)
	managed.CreatedAt = fixedNow

	actor := entity.Actor{
		ID:          owned.LandlordID,
		Roles:       entity.Roles{entity.RoleLandlord, entity.RoleStaff},
		BuildingIDs: []uuid.UUID{managed.BuildingID},
	}

	f.contractRepo.EXPECT().FindByTenant(mock.Anything, actor.ID).Return([]*entity.Contract{}, nil)
	f.contractRepo.EXPECT().FindByLandlord(mock.Anything, actor.ID).Return([]*entity.Contract{owned}, nil)
	f.contractRepo.EXPECT().FindByBuildings(mock.Anything, actor.BuildingIDs).Return([]*entity.Contract{managed, owned}, nil)

	got, err := f.svc.List(context.Background(), actor)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, managed.ID, got[0].ID)
	assert.Equal(t, owned.ID, got[1].ID)
}

func TestContractService_MissingFields(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusDraft)
	c.PartyB.IDNumber = "  "
	tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
	f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(tmpl, nil)

	missing, err := f.svc.MissingFields(context.Background(), tenantOf(c), c.ID)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	assert.Equal(t, "B.idNumber", missing[0].Key)
	assert.Equal(t, "tenant_id", missing[0].PdfField)
}

func TestContractService_SignByLandlord(t *testing.T) {
	t.Run("signs and notifies", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusReadyForSign)
		tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(tmpl, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).RunAndReturn(func(ctx context.Context, c *entity.Contract) error {
			return bumpVersion(ctx, c)
		})
		f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventSignedByLandlord)).Return()

		got, err := f.svc.SignByLandlord(context.Background(), landlordOf(c), c.ID, "https://cdn/sig.png", int64Ptr(3))
		require.NoError(t, err)
		assert.Equal(t, entity.ContractStatusSignedByLandlord, got.Status)
		assert.Equal(t, int64(4), got.Version)
	})

	t.Run("completes a tenant-signed contract", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusSignedByTenant)
		tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(tmpl, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
		f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventCompleted)).Return()

		got, err := f.svc.SignByLandlord(context.Background(), landlordOf(c), c.ID, "sig", nil)
		require.NoError(t, err)
		assert.Equal(t, entity.ContractStatusCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
		assert.Equal(t, fixedNow, *got.CompletedAt)
	})

	t.Run("missing fields are listed and nothing is written", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusDraft)
		c.PartyB.Name = ""
		c.Terms.StartDate = nil
		tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(tmpl, nil)

		_, err := f.svc.SignByLandlord(context.Background(), landlordOf(c), c.ID, "sig", nil)
		require.ErrorIs(t, err, domainerrors.ErrRequiredFieldsMissing)

		appErr, ok := err.(domainerrors.AppError)
		require.True(t, ok)
		details, ok := appErr.Details().(contract.MissingDetails)
		require.True(t, ok)
		assert.Len(t, details.Missing, 2)
		f.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("stale version", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusReadyForSign)
		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

		_, err := f.svc.SignByLandlord(context.Background(), landlordOf(c), c.ID, "sig", int64Ptr(2))
		assert.ErrorIs(t, err, domainerrors.ErrContractVersionConflict)
	})

	t.Run("concurrent write", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusReadyForSign)
		tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(tmpl, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(repository.ErrVersionConflict)

		_, err := f.svc.SignByLandlord(context.Background(), landlordOf(c), c.ID, "sig", nil)
		assert.ErrorIs(t, err, domainerrors.ErrContractVersionConflict)
	})

	t.Run("tenant cannot sign as landlord", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusReadyForSign)
		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

		_, err := f.svc.SignByLandlord(context.Background(), tenantOf(c), c.ID, "sig", nil)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestContractService_SendToTenant(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusSignedByLandlord)
	tmpl := fixtureTemplate(c.TemplateID, c.BuildingID, c.LandlordID)

	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
	f.templateRepo.EXPECT().FindByID(mock.Anything, c.TemplateID).Return(nil, repository.ErrTemplateNotFound)
	f.templateRepo.EXPECT().FindByBuilding(mock.Anything, c.BuildingID).Return(tmpl, nil)
	f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
	f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventSentToTenant)).Return()

	got, err := f.svc.SendToTenant(context.Background(), landlordOf(c), c.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusSentToTenant, got.Status)
	require.NotNil(t, got.SentToTenantAt)
}

func TestContractService_EditData_StructuralAfterDraft(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusSignedByLandlord)
	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

	partyA := entity.Person{Name: "Someone Else"}
	_, err := f.svc.EditData(context.Background(), landlordOf(c), c.ID, contract.LandlordEdit{PartyA: &partyA}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrStructuralEditNotAllowed)
	assert.Equal(t, "Trần Văn Chủ", c.PartyA.Name)
}

func TestContractService_UpdateMyData(t *testing.T) {
	t.Run("occupancy cap", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusSentToTenant)
		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.roomRepo.EXPECT().FindByID(mock.Anything, c.RoomID).Return(fixtureRoom(c, 2), nil)

		roommates := []entity.Person{{Name: "Roommate 1"}, {Name: "Roommate 2"}}
		_, err := f.svc.UpdateMyData(context.Background(), tenantOf(c), c.ID, contract.TenantUpdate{Roommates: &roommates}, nil)
		assert.ErrorIs(t, err, domainerrors.ErrOccupancyExceeded)
		assert.Empty(t, c.Roommates)
	})

	t.Run("within cap", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusSentToTenant)
		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.roomRepo.EXPECT().FindByID(mock.Anything, c.RoomID).Return(fixtureRoom(c, 2), nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)

		roommates := []entity.Person{{Name: " Roommate 1 "}, {Name: ""}}
		got, err := f.svc.UpdateMyData(context.Background(), tenantOf(c), c.ID, contract.TenantUpdate{Roommates: &roommates}, nil)
		require.NoError(t, err)
		assert.Len(t, got.Occupants, 2)
	})
}

func TestContractService_SignByTenant(t *testing.T) {
	t.Run("completes when landlord already signed", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusSentToTenant)
		c.LandlordSignatureURL = "https://cdn/landlord.png"
		c.IdentityVerification = &entity.IdentityVerification{Status: entity.VerificationStatusVerified, Attempts: 1}

		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
		f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventCompleted)).Return()

		got, err := f.svc.SignByTenant(context.Background(), tenantOf(c), c.ID, "https://cdn/tenant.png", nil)
		require.NoError(t, err)
		assert.Equal(t, entity.ContractStatusCompleted, got.Status)
		require.NotNil(t, got.CompletedAt)
	})

	t.Run("identity not verified", func(t *testing.T) {
		f := newContractServiceFixture(t)
		c := fixtureContract(entity.ContractStatusSentToTenant)
		c.IdentityVerification = &entity.IdentityVerification{Status: entity.VerificationStatusFailed, Attempts: 1}
		f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)

		_, err := f.svc.SignByTenant(context.Background(), tenantOf(c), c.ID, "sig", nil)
		assert.ErrorIs(t, err, domainerrors.ErrIdentityNotVerified)
		assert.Equal(t, entity.ContractStatusSentToTenant, c.Status)
	})
}

func TestContractService_GenerateShareQR(t *testing.T) {
	f := newContractServiceFixture(t)
	c := fixtureContract(entity.ContractStatusSentToTenant)
	f.contractRepo.EXPECT().FindByID(mock.Anything, c.ID).Return(c, nil)
	f.qrService.EXPECT().GenerateContractQR(c.ID).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.svc.GenerateShareQR(context.Background(), landlordOf(c), c.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
