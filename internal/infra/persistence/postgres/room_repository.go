package postgres

import (
	"context"

	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/repository"
	"rentflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roomRepository implements the repository.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository is the constructor for roomRepository.
func NewRoomRepository(db *gorm.DB) repository.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// FindByID retrieves a room by its unique ID.
func (repo *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by ID")
	}

	return &entity.Room{
		ID:         roomM.ID,
		BuildingID: roomM.BuildingID,
		LandlordID: roomM.LandlordID,
		Name:       roomM.Name,
		Floor:      roomM.Floor,
		Area:       roomM.Area,
		Price:      roomM.Price,
		MaxTenants: roomM.MaxTenants,
	}, nil
}
