package impl

import (
	"context"
	"testing"
	"time"

	"rentflow/config"
	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/repository"
	mockRepo "rentflow/internal/mocks/repository"
	mockSvc "rentflow/internal/mocks/service"
	mockUsecase "rentflow/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type renewalServiceFixture struct {
	svc          *renewalService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	contractRepo *mockRepo.MockContractRepository
	emitter      *mockUsecase.MockNotificationEmitter
}

func newRenewalServiceFixture(t *testing.T) *renewalServiceFixture {
	f := &renewalServiceFixture{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		contractRepo: mockRepo.NewMockContractRepository(t),
		emitter:      mockUsecase.NewMockNotificationEmitter(t),
	}

	svc, ok := NewRenewalService(RenewalServiceParams{
		TxManager:    f.txManager,
		ContractRepo: f.contractRepo,
		Emitter:      f.emitter,
		Config:       &config.Config{Renewal: &config.RenewalConfig{WindowDays: 60}},
		Logger:       testLogger(),
	}).(*renewalService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }
	f.svc = svc

	return f
}

// expectTx runs the transactional callback against the mocked repository.
func (f *renewalServiceFixture) expectTx(c *entity.Contract, siblings []*entity.Contract) {
	f.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewContractRepository().Return(f.contractRepo)
	f.contractRepo.EXPECT().FindByIDForUpdate(mock.Anything, c.ID).Return(c, nil)
	f.contractRepo.EXPECT().FindLiveByRoom(mock.Anything, c.RoomID, c.ID).Return(siblings, nil).Maybe()
}

func siblingOf(c *entity.Contract, status entity.ContractStatus, start, end *time.Time) *entity.Contract {
	return &entity.Contract{
		ID:         uuid.New(),
		LandlordID: c.LandlordID,
		BuildingID: c.BuildingID,
		RoomID:     c.RoomID,
		Status:     status,
		Terms:      entity.ContractTerms{StartDate: start, EndDate: end},
	}
}

func TestRenewalService_RequestExtend(t *testing.T) {
	f := newRenewalServiceFixture(t)
	c := fixtureContract(entity.ContractStatusCompleted)
	f.expectTx(c, nil)
	f.contractRepo.EXPECT().Update(mock.Anything, c).RunAndReturn(bumpVersion)
	f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventRenewalRequested)).Return()

	got, err := f.svc.RequestExtend(context.Background(), tenantOf(c), c.ID, 6, "  keep the room  ", int64Ptr(3))

	require.NoError(t, err)
	require.NotNil(t, got.RenewalRequest)
	assert.Equal(t, entity.RenewalStatusPending, got.RenewalRequest.Status)
	assert.Equal(t, 6, got.RenewalRequest.Months)
	assert.Equal(t, *datePtr(2025, time.June, 30), got.RenewalRequest.RequestedEndDate)
	assert.Equal(t, "keep the room", got.RenewalRequest.Note)
	assert.Equal(t, entity.RoleTenant, got.RenewalRequest.RequestedByRole)
	assert.Equal(t, fixedNow, got.RenewalRequest.RequestedAt)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, *datePtr(2024, time.December, 31), *got.Terms.EndDate)
}

func TestRenewalService_RequestExtend_LandlordIsForbidden(t *testing.T) {
	f := newRenewalServiceFixture(t)
	c := fixtureContract(entity.ContractStatusCompleted)
	f.expectTx(c, nil)

	_, err := f.svc.RequestExtend(context.Background(), landlordOf(c), c.ID, 12, "", nil)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, c.RenewalRequest)
	f.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRenewalService_RequestExtend_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *entity.Contract) []*entity.Contract
		months  int
		version *int64
		wantErr error
	}{
		{
			name: "overlapping sibling",
			setup: func(c *entity.Contract) []*entity.Contract {
				return []*entity.Contract{siblingOf(c, entity.ContractStatusCompleted, datePtr(2024, time.December, 31), datePtr(2025, time.December, 31))}
			},
			months:  6,
			wantErr: domainerrors.ErrRenewalConflict,
		},
		{
			name: "out of window",
			setup: func(c *entity.Contract) []*entity.Contract {
				c.Terms.EndDate = datePtr(2025, time.June, 30)

				return nil
			},
			months:  6,
			wantErr: domainerrors.ErrRenewalOutOfWindow,
		},
		{
			name: "expired",
			setup: func(c *entity.Contract) []*entity.Contract {
				c.Terms.EndDate = datePtr(2024, time.November, 1)

				return nil
			},
			months:  6,
			wantErr: domainerrors.ErrRenewalOutOfWindow,
		},
		{
			name: "already pending",
			setup: func(c *entity.Contract) []*entity.Contract {
				c.RenewalRequest = &entity.RenewalRequest{Months: 3, Status: entity.RenewalStatusPending}

				return nil
			},
			months:  6,
			wantErr: domainerrors.ErrRenewalAlreadyPending,
		},
		{
			name:    "non-positive months",
			setup:   func(*entity.Contract) []*entity.Contract { return nil },
			months:  0,
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "stale version",
			setup:   func(*entity.Contract) []*entity.Contract { return nil },
			months:  6,
			version: int64Ptr(2),
			wantErr: domainerrors.ErrContractVersionConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRenewalServiceFixture(t)
			c := fixtureContract(entity.ContractStatusCompleted)
			f.expectTx(c, tt.setup(c))

			_, err := f.svc.RequestExtend(context.Background(), tenantOf(c), c.ID, tt.months, "", tt.version)

			assert.ErrorIs(t, err, tt.wantErr)
			f.contractRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.emitter.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
		})
	}
}

func TestRenewalService_RequestExtend_IgnoresSiblingsThatDoNotOverlap(t *testing.T) {
	f := newRenewalServiceFixture(t)
	c := fixtureContract(entity.ContractStatusCompleted)
	f.expectTx(c, []*entity.Contract{
		siblingOf(c, entity.ContractStatusCompleted, datePtr(2025, time.July, 1), datePtr(2025, time.December, 31)),
		siblingOf(c, entity.ContractStatusSignedByTenant, datePtr(2025, time.January, 15), nil),
	})
	f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
	f.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Return()

	_, err := f.svc.RequestExtend(context.Background(), tenantOf(c), c.ID, 6, "", nil)

	assert.NoError(t, err)
}

func TestRenewalService_RequestExtend_StrangerSeesNotFound(t *testing.T) {
	f := newRenewalServiceFixture(t)
	c := fixtureContract(entity.ContractStatusCompleted)
	f.expectTx(c, nil)

	_, err := f.svc.RequestExtend(context.Background(), stranger(), c.ID, 6, "", nil)

	assert.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestRenewalService_RespondToRenewal(t *testing.T) {
	pending := func(c *entity.Contract) {
		c.RenewalRequest = &entity.RenewalRequest{
			Months:           6,
			RequestedEndDate: *datePtr(2025, time.June, 30),
			Status:           entity.RenewalStatusPending,
			RequestedByID:    c.TenantID,
			RequestedByRole:  entity.RoleTenant,
		}
	}

	t.Run("approve extends the end date", func(t *testing.T) {
		f := newRenewalServiceFixture(t)
		c := fixtureContract(entity.ContractStatusCompleted)
		pending(c)
		f.expectTx(c, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
		f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventRenewalResponded)).Return()

		got, err := f.svc.RespondToRenewal(context.Background(), landlordOf(c), c.ID, true, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.RenewalStatusApproved, got.RenewalRequest.Status)
		assert.Equal(t, *datePtr(2025, time.June, 30), *got.Terms.EndDate)
		require.NotNil(t, got.RenewalRequest.RespondedAt)
		assert.Equal(t, fixedNow, *got.RenewalRequest.RespondedAt)
	})

	t.Run("reject keeps the end date", func(t *testing.T) {
		f := newRenewalServiceFixture(t)
		c := fixtureContract(entity.ContractStatusCompleted)
		pending(c)
		f.expectTx(c, nil)
		f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
		f.emitter.EXPECT().Emit(mock.Anything, eventOfType(entity.EventRenewalResponded)).Return()

		got, err := f.svc.RespondToRenewal(context.Background(), landlordOf(c), c.ID, false, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.RenewalStatusRejected, got.RenewalRequest.Status)
		assert.Equal(t, *datePtr(2024, time.December, 31), *got.Terms.EndDate)
	})

	t.Run("approve re-checks siblings", func(t *testing.T) {
		f := newRenewalServiceFixture(t)
		c := fixtureContract(entity.ContractStatusCompleted)
		pending(c)
		f.expectTx(c, []*entity.Contract{
			siblingOf(c, entity.ContractStatusSignedByTenant, datePtr(2025, time.March, 1), datePtr(2025, time.August, 31)),
		})

		_, err := f.svc.RespondToRenewal(context.Background(), landlordOf(c), c.ID, true, nil)

		assert.ErrorIs(t, err, domainerrors.ErrRenewalConflict)
		assert.Equal(t, entity.RenewalStatusPending, c.RenewalRequest.Status)
	})

	t.Run("nothing pending", func(t *testing.T) {
		f := newRenewalServiceFixture(t)
		c := fixtureContract(entity.ContractStatusCompleted)
		f.expectTx(c, nil)

		_, err := f.svc.RespondToRenewal(context.Background(), landlordOf(c), c.ID, true, nil)

		assert.ErrorIs(t, err, domainerrors.ErrRenewalNotPending)
	})

	t.Run("tenant cannot respond", func(t *testing.T) {
		f := newRenewalServiceFixture(t)
		c := fixtureContract(entity.ContractStatusCompleted)
		pending(c)
		f.expectTx(c, nil)

		_, err := f.svc.RespondToRenewal(context.Background(), tenantOf(c), c.ID, true, nil)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestRenewalService_UsesLocker(t *testing.T) {
	f := newRenewalServiceFixture(t)
	locker := mockSvc.NewMockContractLocker(t)
	f.svc.locker = locker

	c := fixtureContract(entity.ContractStatusCompleted)
	released := false
	locker.EXPECT().Acquire(mock.Anything, c.ID).Return(func() { released = true }, nil)
	f.expectTx(c, nil)
	f.contractRepo.EXPECT().Update(mock.Anything, c).Return(nil)
	f.emitter.EXPECT().Emit(mock.Anything, mock.Anything).Return()

	_, err := f.svc.RequestExtend(context.Background(), tenantOf(c), c.ID, 6, "", nil)

	require.NoError(t, err)
	assert.True(t, released)
}
