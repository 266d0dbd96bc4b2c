package indexer

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/search/elastic"
)

type sliceSource struct {
	products []models.Product
	err      error
}

func (s sliceSource) EachIndexedProduct(_ context.Context, fn func(models.Product) error) error {
	for _, p := range s.products {
		if err := fn(p); err != nil {
			return err
		}
	}
	return s.err
}

type fakeBatch struct {
	added    []models.Product
	reject   map[int64]bool
	onFailed func(id, reason string)
	closed   bool
}

func (b *fakeBatch) Add(_ context.Context, p models.Product) error {
	b.added = append(b.added, p)
	return nil
}

func (b *fakeBatch) Close(context.Context) (elastic.BulkStats, error) {
	b.closed = true
	var stats elastic.BulkStats
	for _, p := range b.added {
		if b.reject[p.ID] {
			stats.Failed++
			b.onFailed(strconv.FormatInt(p.ID, 10), "mapper_parsing_exception")
			continue
		}
		stats.Indexed++
	}
	return stats, nil
}

type fakeIndex struct {
	exists   bool
	recreate bool
	batch    *fakeBatch
}

func (f *fakeIndex) EnsureIndex(_ context.Context, recreate bool) (bool, error) {
	f.recreate = recreate
	return !f.exists || recreate, nil
}

func (f *fakeIndex) NewBatch(_ int, onFailed func(id, reason string)) (Batch, error) {
	f.batch.onFailed = onFailed
	return f.batch, nil
}

func products(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Product{ID: int64(i), Name: "p" + strconv.Itoa(i), CategoryName: "Books"})
	}
	return out
}

func TestSyncIndexesEveryProduct(t *testing.T) {
	idx := &fakeIndex{batch: &fakeBatch{}}

	report, err := Sync(context.Background(), sliceSource{products: products(5)}, idx, Options{Workers: 2}, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, Report{Created: true, Read: 5, Indexed: 5}, report)
	assert.True(t, idx.batch.closed)
	assert.Len(t, idx.batch.added, 5)
	assert.Equal(t, "Books", idx.batch.added[0].CategoryName)
}

func TestSyncRecreate(t *testing.T) {
	idx := &fakeIndex{exists: true, batch: &fakeBatch{}}

	report, err := Sync(context.Background(), sliceSource{}, idx, Options{Recreate: true}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, idx.recreate)
	assert.True(t, report.Created)
}

func TestSyncReportsRejections(t *testing.T) {
	idx := &fakeIndex{exists: true, batch: &fakeBatch{reject: map[int64]bool{2: true}}}

	report, err := Sync(context.Background(), sliceSource{products: products(3)}, idx, Options{}, zerolog.Nop())
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, Report{Read: 3, Indexed: 2, Failed: 1}, report)
}

func TestSyncClosesBatchOnReadError(t *testing.T) {
	idx := &fakeIndex{batch: &fakeBatch{}}
	readErr := errors.New("connection reset")

	report, err := Sync(context.Background(), sliceSource{products: products(2), err: readErr}, idx, Options{}, zerolog.Nop())
	assert.ErrorIs(t, err, readErr)
	assert.True(t, idx.batch.closed)
	assert.Equal(t, uint64(2), report.Indexed)
}
