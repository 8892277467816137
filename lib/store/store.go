// Package store defines the persistent indicator store the harvester
// appends to. the store is the single source of truth for which
// bulletins have been recorded; the local PDF cache is only a
// fetch-avoidance optimization.
package store

import (
	"context"
	"time"

	"bulletinwatch/lib/bulletin/extract"
)

// Row is one appended record: the bulletin's display timestamp
// followed by one value per extraction pattern. rows are immutable,
// appended once and never revisited.
type Row struct {
	Time   time.Time
	Fields []extract.FieldValue
}

type Store interface {
	// LastRecorded returns the latest timestamp present in the
	// store's timestamp column. ok is false when the store is empty.
	LastRecorded(ctx context.Context) (t time.Time, ok bool, err error)
	// Append writes rows as a single batch, in the given order.
	Append(ctx context.Context, rows []Row) error
	// History returns every recorded row, oldest first.
	History(ctx context.Context) ([]Row, error)
}
