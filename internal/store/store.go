// Package store is the single source of truth for every storefront
// collection: users, categories, products, cart items, orders and order
// items. By default it runs on an in-memory sqlite database, so all state
// is process-lifetime only; pointing DATABASE_URL at postgres swaps the
// backend without touching any query.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/zakihadj/souq/internal/logging"
	"github.com/zakihadj/souq/internal/models"
)

type Store struct {
	DB *gorm.DB
}

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// Open connects to postgres when dsn is non-empty, otherwise to a private
// in-memory sqlite database. The sqlite pool is pinned to one connection:
// every pooled connection would otherwise see its own empty :memory: db.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	cfg := &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	if dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		logging.FromContext(ctx).Info("DATABASE_URL not set, using in-memory sqlite")
		db, err = gorm.Open(sqlite.Open(":memory:"), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if dsn != "" {
		configurePool(sqlDB)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping database: %w", err)
		}
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// New migrates the schema and wraps the connection in a Store.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{DB: db}, nil
}
