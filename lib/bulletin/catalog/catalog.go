// Package catalog turns the archive page's raw link listing into a
// deduplicated mapping of bulletin timestamp to source URL.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/htmlutil"
	"bulletinwatch/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("bulletinwatch.lib.bulletin.catalog")

var (
	// ErrUncorrectedLinkMissing signals a listing inconsistency: a
	// "corrected" label with no uncorrected counterpart.
	ErrUncorrectedLinkMissing = errors.New("uncorrected link not found")
	// ErrDuplicateLabel is returned under DuplicatesReject when the
	// listing repeats a label verbatim.
	ErrDuplicateLabel = errors.New("duplicate link label")
	// ErrTimestampCollision signals two distinct labels resolving to
	// the same publication timestamp after correction resolution.
	ErrTimestampCollision = errors.New("bulletin timestamp collision")
)

const correctionMarker = "corrected"

// DuplicatePolicy decides what happens when the raw listing contains
// the same normalized label more than once.
type DuplicatePolicy int

const (
	// DuplicatesLastWins keeps the later occurrence, matching the
	// upstream archive's convention of re-listing a document it
	// re-uploaded.
	DuplicatesLastWins DuplicatePolicy = iota
	DuplicatesFirstWins
	DuplicatesReject
)

type Options struct {
	// Domain is prepended to hrefs that are absolute paths.
	Domain string
	// Exclude drops links whose normalized label contains any of
	// these substrings. nil means DefaultExclusions.
	Exclude []string
	// Duplicates defaults to DuplicatesLastWins.
	Duplicates DuplicatePolicy
}

// DefaultExclusions skips links to individual case statements and
// per-zip-code breakdowns, which are not general bulletins.
var DefaultExclusions = []string{"statement", "zip code"}

// Catalog maps a bulletin's publication timestamp to the URL of its
// PDF. timestamps are unique; collisions fail Build.
type Catalog map[bulletin.Timestamp]string

// Timestamps returns the catalog's keys in ascending order.
func (c Catalog) Timestamps() []bulletin.Timestamp {
	out := make([]bulletin.Timestamp, 0, len(c))
	for ts := range c {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Fetch downloads the archive listing and returns the anchors whose
// href contains hrefRoot.
func Fetch(ctx context.Context, client *resty.Client, archiveURL, hrefRoot string) ([]htmlutil.Anchor, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()

	res, err := client.R().SetContext(ctx).Get(archiveURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", archiveURL, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetch listing %s: status %s", archiveURL, res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(res.Body()))
	if err != nil {
		return nil, fmt.Errorf("parse listing %s: %w", archiveURL, err)
	}

	return htmlutil.Anchors(ctx, doc, hrefRoot), nil
}

// Build folds raw anchors into a catalog. the passes run in a fixed
// order: normalize and exclude, dedup verbatim labels, resolve
// "corrected" supersessions, then re-key by parsed timestamp.
// correction resolution has to happen on textual labels before
// timestamp parsing, a corrected document keeps the same nominal date
// as its original.
func Build(anchors []htmlutil.Anchor, opts Options) (Catalog, error) {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclusions
	}

	byLabel := map[string]string{}
	var order []string

	for _, a := range anchors {
		label := textutil.Normalize(a.Label)
		if label == "" || textutil.MatchAny(label, exclude) {
			continue
		}

		href := a.Href
		if strings.HasPrefix(href, "/") {
			href = opts.Domain + href
		}

		if _, seen := byLabel[label]; seen {
			switch opts.Duplicates {
			case DuplicatesFirstWins:
				continue
			case DuplicatesReject:
				return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
			}
		} else {
			order = append(order, label)
		}
		byLabel[label] = href
	}

	if err := resolveCorrections(byLabel); err != nil {
		return nil, err
	}

	out := Catalog{}
	byTimestamp := map[bulletin.Timestamp]string{}
	for _, label := range order {
		href, ok := byLabel[label]
		if !ok {
			// folded into its uncorrected counterpart
			continue
		}
		t, err := ParseLabel(label)
		if err != nil {
			return nil, err
		}
		ts := bulletin.At(t)
		if prev, ok := byTimestamp[ts]; ok {
			return nil, fmt.Errorf(
				"%w: %s claimed by both %q and %q",
				ErrTimestampCollision, ts, prev, label,
			)
		}
		byTimestamp[ts] = label
		out[ts] = href
	}

	return out, nil
}

// resolveCorrections replaces each uncorrected entry's URL with its
// corrected counterpart's and drops the corrected-labeled entry.
// idempotent: a second pass over an already-resolved map finds no
// correction markers left.
func resolveCorrections(byLabel map[string]string) error {
	labels := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if !strings.Contains(label, correctionMarker) {
			continue
		}
		base := strings.Join(strings.Fields(
			strings.ReplaceAll(label, correctionMarker, ""),
		), " ")
		if _, ok := byLabel[base]; !ok {
			return fmt.Errorf("%w: for %q", ErrUncorrectedLinkMissing, label)
		}
		byLabel[base] = byLabel[label]
		delete(byLabel, label)
	}
	return nil
}
