package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"ekthaa/internal/config"
)

// hsnIdleTimeout releases pooled connections between readiness checks; the
// server only reads the master table once at startup.
const hsnIdleTimeout = 5 * time.Minute

// NewDB opens the connection pool for the HSN master database.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres %s/%s: %w", cfg.Host, cfg.Name, err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	db.SetConnMaxIdleTime(hsnIdleTimeout)
	return db, nil
}
