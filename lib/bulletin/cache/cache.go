// Package cache persists downloaded bulletin PDFs, keyed by their
// canonical timestamp encoding. presence of a file is the only
// fetch-avoidance signal; files are never revalidated or deleted.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/catalog"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("bulletinwatch.lib.bulletin.cache")

const ext = ".pdf"

type Cache struct {
	Dir string
}

// Path returns the local file a bulletin is (or would be) stored at.
func (c Cache) Path(ts bulletin.Timestamp) string {
	return filepath.Join(c.Dir, string(ts)+ext)
}

// Has reports whether the bulletin has already been downloaded.
func (c Cache) Has(ts bulletin.Timestamp) bool {
	_, err := os.Stat(c.Path(ts))
	return err == nil
}

// Stored lists the timestamps of every cached bulletin, ascending.
func (c Cache) Stored() ([]bulletin.Timestamp, error) {
	entries, err := os.ReadDir(c.Dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var out []bulletin.Timestamp
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		ts, err := bulletin.Parse(strings.TrimSuffix(e.Name(), ext))
		if err != nil {
			slog.Warn("skipping foreign file in cache dir", "name", e.Name())
			continue
		}
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// EnsureFetched downloads every catalog entry not present in the cache
// directory. a failed download aborts immediately, there are no
// retries; the next run picks up where this one failed.
func (c Cache) EnsureFetched(ctx context.Context, client *resty.Client, cat catalog.Catalog) error {
	ctx, span := tracer.Start(ctx, "EnsureFetched")
	defer span.End()

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}

	for _, ts := range cat.Timestamps() {
		if c.Has(ts) {
			continue
		}
		url := cat[ts]
		path := c.Path(ts)
		slog.InfoContext(ctx, "downloading bulletin",
			"file", path, "source", filepath.Base(url))
		if err := c.download(ctx, client, url, path); err != nil {
			return err
		}
	}
	return nil
}

func (c Cache) download(ctx context.Context, client *resty.Client, url, path string) error {
	res, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("fetch bulletin %s: %w", url, err)
	}
	if res.IsError() {
		return fmt.Errorf("fetch bulletin %s: status %s", url, res.Status())
	}
	return os.WriteFile(path, res.Body(), 0644)
}
