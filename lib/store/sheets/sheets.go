// Package sheets backs the indicator store with a Google Sheets
// spreadsheet, the grid the county indicator dashboard is built on.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/store"
	"bulletinwatch/lib/timezone"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	// timestamps live in column A, row 1 is the header.
	datetimeRange = "A2:A"
	historyRange  = "A2:G"
	// append spans the timestamp, a reserved column, and the five
	// indicator columns.
	dataRange = "A:G"
)

type Store struct {
	svc           *sheets.Service
	spreadsheetId string
}

func NewStore(ctx context.Context, client *http.Client, spreadsheetId string) (Store, error) {
	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return Store{}, fmt.Errorf("init sheets service: %w", err)
	}
	return Store{svc: svc, spreadsheetId: spreadsheetId}, nil
}

func (s Store) LastRecorded(ctx context.Context) (time.Time, bool, error) {
	res, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetId, datetimeRange).
		Context(ctx).Do()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read timestamp column: %w", err)
	}
	if len(res.Values) == 0 {
		return time.Time{}, false, nil
	}

	last := res.Values[len(res.Values)-1]
	if len(last) == 0 {
		return time.Time{}, false, fmt.Errorf("empty trailing row in timestamp column")
	}
	t, err := time.ParseInLocation(
		bulletin.DisplayTimeFormat,
		fmt.Sprint(last[0]),
		timezone.Location,
	)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse last recorded timestamp: %w", err)
	}
	return t, true, nil
}

func (s Store) Append(ctx context.Context, rows []store.Row) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		record := make([]interface{}, 0, len(row.Fields)+2)
		record = append(record, row.Time.Format(bulletin.DisplayTimeFormat))
		// reserved column, kept blank for the sheet's own cleaned
		// date formula
		record = append(record, "")
		for _, f := range row.Fields {
			record = append(record, f.String())
		}
		values[i] = record
	}

	// USER_ENTERED so the sheet coerces textual numbers into numeric
	// cells
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetId, dataRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append rows: %w", err)
	}
	return nil
}

func (s Store) History(ctx context.Context) ([]store.Row, error) {
	res, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetId, historyRange).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var out []store.Row
	for _, cells := range res.Values {
		if len(cells) == 0 {
			continue
		}
		t, err := time.ParseInLocation(
			bulletin.DisplayTimeFormat,
			fmt.Sprint(cells[0]),
			timezone.Location,
		)
		if err != nil {
			return nil, fmt.Errorf("parse recorded timestamp: %w", err)
		}
		out = append(out, store.Row{
			Time:   t,
			Fields: parseFields(cells),
		})
	}
	return out, nil
}

func parseFields(cells []interface{}) []extract.FieldValue {
	fields := make([]extract.FieldValue, len(extract.DefaultPatterns))
	for i := range fields {
		col := i + 2
		if col >= len(cells) {
			fields[i] = extract.Unavailable()
			continue
		}
		v := fmt.Sprint(cells[col])
		if v == "" || v == extract.Sentinel {
			fields[i] = extract.Unavailable()
			continue
		}
		fields[i] = extract.Matched(v)
	}
	return fields
}
