package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ekthaa/internal/port"
)

const upsertBatchSize = 500

type hsnRepo struct {
	db *sqlx.DB
}

// NewHSNRepo creates a PostgreSQL-backed HSNRepository.
func NewHSNRepo(db *sqlx.DB) port.HSNRepository {
	return &hsnRepo{db: db}
}

func (r *hsnRepo) LoadAll(ctx context.Context) ([]port.HSNEntry, error) {
	var entries []port.HSNEntry
	err := r.db.SelectContext(ctx, &entries,
		`SELECT code, description, gst_rate, condition_desc
		 FROM hsn_codes
		 WHERE effective_to IS NULL OR effective_to >= CURRENT_DATE
		 ORDER BY code, gst_rate`)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Upsert inserts entries in batches inside one transaction. Rows that already
// exist for the same code, rate and condition are left untouched.
func (r *hsnRepo) Upsert(ctx context.Context, entries []port.HSNEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning hsn upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var inserted int64
	for i := 0; i < len(entries); i += upsertBatchSize {
		end := i + upsertBatchSize
		if end > len(entries) {
			end = len(entries)
		}
		res, err := tx.NamedExecContext(ctx,
			`INSERT INTO hsn_codes (code, description, gst_rate, condition_desc)
			 VALUES (:code, :description, :gst_rate, :condition_desc)
			 ON CONFLICT (code, gst_rate, condition_desc) DO NOTHING`,
			entries[i:end])
		if err != nil {
			return 0, fmt.Errorf("inserting hsn batch at offset %d: %w", i, err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing hsn upsert: %w", err)
	}
	return int(inserted), nil
}

func (r *hsnRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
