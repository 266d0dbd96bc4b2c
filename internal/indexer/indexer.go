// Package indexer copies the relational catalog into the full-text index.
// It runs out of band; the API never triggers or waits for it.
package indexer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/search/elastic"
)

// Source streams every product with its category name.
type Source interface {
	EachIndexedProduct(ctx context.Context, fn func(models.Product) error) error
}

// Batch accepts documents and flushes them on Close.
type Batch interface {
	Add(ctx context.Context, p models.Product) error
	Close(ctx context.Context) (elastic.BulkStats, error)
}

// Index is the destination index.
type Index interface {
	EnsureIndex(ctx context.Context, recreate bool) (bool, error)
	NewBatch(workers int, onFailed func(id, reason string)) (Batch, error)
}

// Options tunes a sync run.
type Options struct {
	Recreate bool
	Workers  int
}

// Report summarizes a sync run.
type Report struct {
	Created bool
	Read    int
	Indexed uint64
	Failed  uint64
}

// ErrRejected is returned when the index refused at least one document.
var ErrRejected = errors.New("some products were rejected by the index")

// Sync makes sure the index exists and bulk-indexes every product keyed by
// its id.
func Sync(ctx context.Context, src Source, idx Index, opts Options, log zerolog.Logger) (Report, error) {
	var report Report

	created, err := idx.EnsureIndex(ctx, opts.Recreate)
	if err != nil {
		return report, err
	}
	report.Created = created
	if created {
		log.Info().Msg("created search index")
	}

	batch, err := idx.NewBatch(opts.Workers, func(id, reason string) {
		log.Warn().Str("product_id", id).Str("reason", reason).Msg("product rejected by index")
	})
	if err != nil {
		return report, err
	}

	readErr := src.EachIndexedProduct(ctx, func(p models.Product) error {
		report.Read++
		if err := batch.Add(ctx, p); err != nil {
			return fmt.Errorf("queue product %d: %w", p.ID, err)
		}
		return nil
	})

	stats, closeErr := batch.Close(ctx)
	report.Indexed, report.Failed = stats.Indexed, stats.Failed

	if err := errors.Join(readErr, closeErr); err != nil {
		return report, err
	}
	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrRejected, report.Failed, report.Read)
	}
	return report, nil
}
