package impl

import (
	"context"
	"testing"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	mockRepo "rentflow/internal/mocks/repository"
	"rentflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTemplateService(t *testing.T) (*templateService, *mockRepo.MockTemplateRepository) {
	repo := mockRepo.NewMockTemplateRepository(t)
	svc, ok := NewTemplateService(TemplateServiceParams{
		TemplateRepo: repo,
		Logger:       testLogger(),
	}).(*templateService)
	require.True(t, ok)

	return svc, repo
}

func TestTemplateService_Get(t *testing.T) {
	buildingID, landlordID := uuid.New(), uuid.New()
	tmpl := fixtureTemplate(uuid.New(), buildingID, landlordID)

	tests := []struct {
		name    string
		actor   entity.Actor
		wantErr error
	}{
		{name: "owner", actor: entity.Actor{ID: landlordID, Roles: entity.Roles{entity.RoleLandlord}}},
		{name: "staff of the building", actor: entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleStaff}, BuildingIDs: []uuid.UUID{buildingID}}},
		{name: "admin", actor: entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}},
		{name: "other landlord", actor: stranger(), wantErr: domainerrors.ErrTemplateNotFound},
		{name: "tenant", actor: entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleTenant}}, wantErr: domainerrors.ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestTemplateService(t)
			repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(tmpl, nil)

			got, err := svc.Get(context.Background(), tt.actor, buildingID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tmpl, got)
		})
	}
}

func TestTemplateService_Get_Missing(t *testing.T) {
	svc, repo := newTestTemplateService(t)
	buildingID := uuid.New()
	repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(nil, repository.ErrTemplateNotFound)

	_, err := svc.Get(context.Background(), entity.Actor{Roles: entity.Roles{entity.RoleAdmin}}, buildingID)

	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestTemplateService_Upsert_CreatesForLandlord(t *testing.T) {
	svc, repo := newTestTemplateService(t)
	actor := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleLandlord}}
	buildingID := uuid.New()
	savedID := uuid.New()

	repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(nil, repository.ErrTemplateNotFound)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(tmpl *entity.ContractTemplate) bool {
		return tmpl.LandlordID == actor.ID && tmpl.BuildingID == buildingID
	})).RunAndReturn(func(_ context.Context, tmpl *entity.ContractTemplate) error {
		tmpl.ID = savedID

		return nil
	})

	got, err := svc.Upsert(context.Background(), actor, usecase.UpsertTemplateInput{
		BuildingID: buildingID,
		Fields: []entity.TemplateField{
			{PdfField: "tenant_name", Key: "B.name", Type: "text", Required: true},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, savedID, got.ID)
	assert.NotNil(t, got.DefaultTermIDs)
	assert.NotNil(t, got.DefaultRegulationIDs)
}

func TestTemplateService_Upsert_KeepsExistingOwner(t *testing.T) {
	svc, repo := newTestTemplateService(t)
	buildingID, landlordID := uuid.New(), uuid.New()
	existing := fixtureTemplate(uuid.New(), buildingID, landlordID)
	staff := entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleStaff}, BuildingIDs: []uuid.UUID{buildingID}}

	repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(existing, nil)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(tmpl *entity.ContractTemplate) bool {
		return tmpl.LandlordID == landlordID
	})).Return(nil)

	_, err := svc.Upsert(context.Background(), staff, usecase.UpsertTemplateInput{
		LandlordID: uuid.New(),
		BuildingID: buildingID,
		Fields:     existing.Fields,
	})

	assert.NoError(t, err)
}

func TestTemplateService_Upsert_AdminAssignsLandlord(t *testing.T) {
	svc, repo := newTestTemplateService(t)
	buildingID, landlordID := uuid.New(), uuid.New()

	repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(nil, repository.ErrTemplateNotFound)
	repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(tmpl *entity.ContractTemplate) bool {
		return tmpl.LandlordID == landlordID
	})).Return(nil)

	_, err := svc.Upsert(context.Background(), entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}, usecase.UpsertTemplateInput{
		LandlordID: landlordID,
		BuildingID: buildingID,
	})

	assert.NoError(t, err)
}

func TestTemplateService_Upsert_Rejections(t *testing.T) {
	buildingID := uuid.New()
	owned := fixtureTemplate(uuid.New(), buildingID, uuid.New())

	tests := []struct {
		name     string
		actor    entity.Actor
		input    usecase.UpsertTemplateInput
		existing *entity.ContractTemplate
		lookup   bool
		wantErr  error
	}{
		{
			name:    "missing building",
			actor:   stranger(),
			input:   usecase.UpsertTemplateInput{},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "empty key",
			actor: stranger(),
			input: usecase.UpsertTemplateInput{BuildingID: buildingID, Fields: []entity.TemplateField{
				{PdfField: "x", Key: "  "},
			}},
			wantErr: domainerrors.ErrInvalidTemplate,
		},
		{
			name:  "duplicate key",
			actor: stranger(),
			input: usecase.UpsertTemplateInput{BuildingID: buildingID, Fields: []entity.TemplateField{
				{PdfField: "a", Key: "B.name"},
				{PdfField: "b", Key: " B.name "},
			}},
			wantErr: domainerrors.ErrInvalidTemplate,
		},
		{
			name:     "building of another landlord",
			actor:    stranger(),
			input:    usecase.UpsertTemplateInput{BuildingID: buildingID},
			existing: owned,
			lookup:   true,
			wantErr:  domainerrors.ErrForbidden,
		},
		{
			name:    "tenant creating",
			actor:   entity.Actor{ID: uuid.New(), Roles: entity.Roles{entity.RoleTenant}},
			input:   usecase.UpsertTemplateInput{BuildingID: buildingID},
			lookup:  true,
			wantErr: domainerrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestTemplateService(t)
			if tt.lookup {
				if tt.existing != nil {
					repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(tt.existing, nil)
				} else {
					repo.EXPECT().FindByBuilding(mock.Anything, buildingID).Return(nil, repository.ErrTemplateNotFound)
				}
			}

			_, err := svc.Upsert(context.Background(), tt.actor, tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}
