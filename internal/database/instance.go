package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/diegoclair/shift-timeslots/internal/domain/contract"
	"go.uber.org/zap"
)

// instance implements DataManager interface
type instance struct {
	db                *DB
	templateRepo      contract.TemplateRepo
	configurationRepo contract.ConfigurationRepo
	shiftRepo         contract.ShiftRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	return repoInstancesWithConn(db, db.wrap(db.conn))
}

// repoInstancesWithConn creates repository instances bound to c
func repoInstancesWithConn(db *DB, c *conn) *instance {
	return &instance{
		db:                db,
		templateRepo:      newTemplateRepo(c),
		configurationRepo: newConfigurationRepo(c),
		shiftRepo:         newShiftRepo(c),
	}
}

// Template returns the template repository
func (i *instance) Template() contract.TemplateRepo {
	return i.templateRepo
}

// Configuration returns the configuration repository
func (i *instance) Configuration() contract.ConfigurationRepo {
	return i.configurationRepo
}

// Shift returns the availability/assignment reader
func (i *instance) Shift() contract.ShiftRepo {
	return i.shiftRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(i.db, i.db.wrap(tx))
	if err := fn(txInstance); err != nil {
		return i.rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return i.rollback(tx, fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

type rollbacker interface {
	Rollback() error
}

// rollback never masks cause. A rollback on a transaction that is already
// closed is not an error.
func (i *instance) rollback(tx rollbacker, cause error) error {
	rbErr := tx.Rollback()
	if rbErr == nil || errors.Is(rbErr, sql.ErrTxDone) {
		return cause
	}

	i.db.retrier.log.Error("failed to rollback transaction", zap.Error(rbErr), zap.NamedError("cause", cause))
	return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, cause)
}
