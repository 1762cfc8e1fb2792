// Package postgres provides GORM-based implementation of the Unit of Work pattern.
// The Unit of Work pattern maintains a list of objects affected by a business
// transaction and coordinates writing out changes and resolving concurrency problems.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.TruckRepository().Add(ctx, truck); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The delivery admission handler uses BeginSerializable instead of Begin: its
// capacity counts and insert must behave as one transaction even against
// admissions arriving through other processes. A serializable transaction
// losing that race fails at commit with ErrSerializationConflict, which the
// handler retries.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fleet/internal/adapters/out/postgres/deliveryrepo"
	"fleet/internal/adapters/out/postgres/driverrepo"
	"fleet/internal/adapters/out/postgres/truckrepo"
	"fleet/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error code for serialization failures of serializable transactions.
const serializationFailureCode = "40001"

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work instance with proper
// isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates database transactions for business operations.
// Repository accessors return repositories bound to the current transaction,
// or to the main connection when no transaction is active.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin initiates a new database transaction at the default isolation level.
// Multiple calls to Begin on the same instance are safe and will not create
// nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	return uow.begin(ctx, nil)
}

// BeginSerializable initiates a new database transaction at serializable
// isolation.
func (uow *GormUnitOfWork) BeginSerializable(ctx context.Context) error {
	return uow.begin(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (uow *GormUnitOfWork) begin(ctx context.Context, opts *sql.TxOptions) error {
	if uow.tx != nil {
		return nil
	}

	if opts != nil {
		uow.tx = uow.db.WithContext(ctx).Begin(opts)
	} else {
		uow.tx = uow.db.WithContext(ctx).Begin()
	}
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes all changes made within the current transaction. A commit
// rejected because a concurrent serializable transaction won is reported as
// ports.ErrSerializationConflict so callers can retry.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == serializationFailureCode {
		return fmt.Errorf("commit: %w", ports.ErrSerializationConflict)
	}
	return err
}

// Rollback discards all changes made within the current transaction.
// Rolling back with no active transaction is a no-op, so handlers can always
// defer a rollback after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TruckRepository returns a truck repository bound to the current transaction.
func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn())
}

// DriverRepository returns a driver repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// DeliveryRepository returns a delivery repository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
