// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/secwatch/console/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// kvSlot is one row of the kv_slots table.
type kvSlot struct {
	bun.BaseModel `bun:"table:kv_slots"`

	Key       string    `bun:"key,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// SQLStore keeps the token in a kv_slots table of a sqlite, postgres or
// mysql database.
type SQLStore struct {
	bun    *bun.DB
	dbType string
}

// NewSQLStore opens dsn with the driver matching dbType and makes sure the
// kv_slots table exists.
func NewSQLStore(dbType, dsn string) (*SQLStore, error) {
	driverName := dbType
	// The pgx stdlib registers driver name "pgx".
	if dbType == "postgres" {
		driverName = "pgx"
	}
	start := time.Now()
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A private in-memory sqlite database only exists on its own connection.
	if dbType == "sqlite" && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(4)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
	}

	bunDB, err := createBunDB(sqlDB, dbType)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	s := &SQLStore{bun: bunDB, dbType: dbType}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := bunDB.NewCreateTable().Model((*kvSlot)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to create kv_slots table: %w", err)
	}
	logging.Debugf("tokenstore: opened %s driver in %s", driverName, time.Since(start))
	return s, nil
}

func createBunDB(sqlDB *sql.DB, dbType string) (*bun.DB, error) {
	switch dbType {
	case "sqlite":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, dbType)
	}
}

func (s *SQLStore) Get(ctx context.Context) (string, error) {
	var row kvSlot
	err := s.bun.NewSelect().Model(&row).Where("? = ?", bun.Ident("key"), Key).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return row.Value, nil
}

// Set replaces the slot inside a transaction so the write is atomic across
// dialects without relying on dialect-specific upsert syntax.
func (s *SQLStore) Set(ctx context.Context, token string) error {
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*kvSlot)(nil)).Where("? = ?", bun.Ident("key"), Key).Exec(ctx); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		row := &kvSlot{Key: Key, Value: token, UpdatedAt: time.Now().UTC()}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("write token: %w", err)
		}
		return nil
	})
}

func (s *SQLStore) Clear(ctx context.Context) error {
	if _, err := s.bun.NewDelete().Model((*kvSlot)(nil)).Where("? = ?", bun.Ident("key"), Key).Exec(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLStore) Close() error { return s.bun.Close() }
