// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"rentflow/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// Every repository it creates shares the same transaction handle.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewContractRepository creates a new contract repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewContractRepository() repository.ContractRepository {
	return NewContractRepository(f.tx)
}

// NewTemplateRepository creates a new template repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTemplateRepository() repository.TemplateRepository {
	return NewTemplateRepository(f.tx)
}

// NewRoomRepository creates a new room repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRoomRepository() repository.RoomRepository {
	return NewRoomRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic so the connection is returned clean.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}
		return err // Return the original business error.
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
