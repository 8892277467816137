package sqlite

import (
	"context"
	"testing"
	"time"

	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/store"
	"bulletinwatch/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	st := NewStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	_, ok, err := st.LastRecorded(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.False(t, ok)

	rows := []store.Row{
		{
			Time: time.Date(2020, time.March, 15, 9, 0, 0, 0, timezone.Location),
			Fields: []extract.FieldValue{
				extract.Matched("100"),
				extract.Matched("1"),
				extract.Matched("12"),
				extract.Unavailable(),
				extract.Matched("200"),
			},
		},
		{
			Time: time.Date(2020, time.March, 16, 14, 0, 0, 0, timezone.Location),
			Fields: []extract.FieldValue{
				extract.Matched("142"),
				extract.Matched("3"),
				extract.Matched("22"),
				extract.Matched("8"),
				extract.Matched("430"),
			},
		},
	}
	err = st.Append(ctx, rows)
	if err != nil {
		t.Fatal(err)
	}

	last, ok, err := st.LastRecorded(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, ok)
	require.Equal(t, rows[1].Time, last)

	history, err := st.History(ctx)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, rows, history)
}

func TestAppendRejectsBadWidth(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	st := NewStore(db)

	err = st.Append(context.Background(), []store.Row{
		{Time: timezone.Now(), Fields: []extract.FieldValue{extract.Matched("1")}},
	})
	require.Error(t, err)
}
