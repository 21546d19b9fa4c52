package port

import "context"

// HSNEntry is one row of the HSN master: a code and a GST rate that applies to it.
// A code may appear more than once when its rate depends on a condition.
type HSNEntry struct {
	Code          string  `db:"code" json:"code"`
	Description   string  `db:"description" json:"description"`
	GSTRate       float64 `db:"gst_rate" json:"gst_rate"`
	ConditionDesc string  `db:"condition_desc" json:"condition_desc,omitempty"`
}

// HSNRepository reads and seeds the HSN master table.
type HSNRepository interface {
	LoadAll(ctx context.Context) ([]HSNEntry, error)
	Upsert(ctx context.Context, entries []HSNEntry) (int, error)
	Ping(ctx context.Context) error
}
