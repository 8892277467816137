// Package harvester sequences one incremental harvest: discover
// bulletins, download the missing ones, extract indicators from those
// newer than the store's frontier, and append them in one batch.
package harvester

import (
	"context"
	"log/slog"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/bulletin/cache"
	"bulletinwatch/lib/bulletin/catalog"
	"bulletinwatch/lib/bulletin/extract"
	"bulletinwatch/lib/bulletin/frontier"
	"bulletinwatch/lib/store"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("bulletinwatch.lib.harvester")

type Options struct {
	ArchiveURL string
	// HrefRoot filters listing anchors down to bulletin links.
	HrefRoot string
	Catalog  catalog.Options
	Cache    cache.Cache
	Store    store.Store
	Client   *resty.Client

	// Patterns defaults to extract.DefaultPatterns.
	Patterns []extract.Pattern
	// Text reads a cached bulletin's text, defaults to extract.Text.
	Text func(path string) (string, error)
}

type Harvester struct {
	opts Options
}

func New(opts Options) Harvester {
	if opts.Patterns == nil {
		opts.Patterns = extract.DefaultPatterns
	}
	if opts.Text == nil {
		opts.Text = extract.Text
	}
	if opts.Client == nil {
		opts.Client = resty.New()
	}
	return Harvester{opts: opts}
}

// Run performs one harvest. it returns the number of appended rows;
// zero with a nil error means there was nothing new. any fetch or
// parse failure aborts before the store is touched, the store is only
// written once, at the end.
func (h Harvester) Run(ctx context.Context) (int, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	anchors, err := catalog.Fetch(ctx, h.opts.Client, h.opts.ArchiveURL, h.opts.HrefRoot)
	if err != nil {
		return 0, err
	}
	cat, err := catalog.Build(anchors, h.opts.Catalog)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "built bulletin catalog", "bulletins", len(cat))

	err = h.opts.Cache.EnsureFetched(ctx, h.opts.Client, cat)
	if err != nil {
		return 0, err
	}

	var last bulletin.Timestamp
	lastTime, ok, err := h.opts.Store.LastRecorded(ctx)
	if err != nil {
		return 0, err
	}
	if ok {
		last = bulletin.At(lastTime)
		slog.InfoContext(ctx, "last recorded bulletin", "time", last.Display())
	} else {
		slog.InfoContext(ctx, "store is empty, selecting every cached bulletin")
	}

	cached, err := h.opts.Cache.Stored()
	if err != nil {
		return 0, err
	}
	pending := frontier.Select(cached, last)
	span.SetAttributes(attribute.Int("pending", len(pending)))

	var rows []store.Row
	for _, ts := range pending {
		path := h.opts.Cache.Path(ts)
		slog.InfoContext(ctx, "extracting indicators", "file", path)

		text, err := h.opts.Text(path)
		if err != nil {
			return 0, err
		}
		t, err := ts.Time()
		if err != nil {
			return 0, err
		}
		rows = append(rows, store.Row{
			Time:   t,
			Fields: extract.Extract(text, h.opts.Patterns),
		})
	}

	if len(rows) == 0 {
		slog.InfoContext(ctx, "no new information to update")
		return 0, nil
	}

	err = h.opts.Store.Append(ctx, rows)
	if err != nil {
		return 0, err
	}
	slog.InfoContext(ctx, "appended rows", "count", len(rows))
	return len(rows), nil
}
