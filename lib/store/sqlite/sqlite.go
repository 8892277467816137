// Package sqlite backs the indicator store with a local sqlite
// database, for running without Google credentials and for tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/store"
	"bulletinwatch/lib/timezone"

	_ "modernc.org/sqlite"
)

const Schema = `
CREATE TABLE IF NOT EXISTS bulletins (
	time TEXT PRIMARY KEY,
	cases TEXT,
	deaths TEXT,
	hospitalized TEXT,
	icu TEXT,
	quarantined TEXT
);
`

// Open opens (creating if necessary) the database at path and applies
// the schema. path may be ":memory:".
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return Store{db: db}
}

func (s Store) LastRecorded(ctx context.Context) (time.Time, bool, error) {
	// the display encoding is zero-padded, so MAX over the text
	// column is the chronological maximum
	var last sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT MAX(time) FROM bulletins`).Scan(&last)
	if err != nil {
		return time.Time{}, false, err
	}
	if !last.Valid {
		return time.Time{}, false, nil
	}
	t, err := time.ParseInLocation(bulletin.DisplayTimeFormat, last.String, timezone.Location)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse last recorded timestamp: %w", err)
	}
	return t, true, nil
}

func (s Store) Append(ctx context.Context, rows []store.Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, row := range rows {
		if len(row.Fields) != len(extract.DefaultPatterns) {
			return fmt.Errorf("expected %d fields, got %d",
				len(extract.DefaultPatterns), len(row.Fields))
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bulletins (time, cases, deaths, hospitalized, icu, quarantined)
			VALUES (?, ?, ?, ?, ?, ?)`,
			row.Time.Format(bulletin.DisplayTimeFormat),
			row.Fields[0].String(),
			row.Fields[1].String(),
			row.Fields[2].String(),
			row.Fields[3].String(),
			row.Fields[4].String(),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s Store) History(ctx context.Context) ([]store.Row, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT time, cases, deaths, hospitalized, icu, quarantined
		FROM bulletins ORDER BY time ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Row
	for rows.Next() {
		var ts string
		cells := make([]string, len(extract.DefaultPatterns))
		err := rows.Scan(&ts, &cells[0], &cells[1], &cells[2], &cells[3], &cells[4])
		if err != nil {
			return nil, err
		}
		t, err := time.ParseInLocation(bulletin.DisplayTimeFormat, ts, timezone.Location)
		if err != nil {
			return nil, fmt.Errorf("parse recorded timestamp: %w", err)
		}

		fields := make([]extract.FieldValue, len(cells))
		for i, v := range cells {
			if v == "" || v == extract.Sentinel {
				fields[i] = extract.Unavailable()
				continue
			}
			fields[i] = extract.Matched(v)
		}
		out = append(out, store.Row{Time: t, Fields: fields})
	}
	return out, rows.Err()
}
