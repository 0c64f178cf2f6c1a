package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// PoolConfig bounds the connection pool.  Zero values leave the
// database/sql defaults in place.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the configured store, applies pool settings and verifies
// the connection.  driver is one of postgres, mysql or sqlite3.
func Open(driver, dsn string, pool PoolConfig) (*sql.DB, Dialect, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	db, err := sql.Open(dialect.DriverName, dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("open %s: %w", driver, err)
	}

	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, Dialect{}, fmt.Errorf("ping %s: %w", driver, err)
	}
	return db, dialect, nil
}
