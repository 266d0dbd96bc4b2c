package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esutil"

	"github.com/hongminglow/catalog-be/internal/models"
)

const mapping = `{
  "mappings": {
    "properties": {
      "id":              { "type": "long" },
      "name":            { "type": "text" },
      "description":     { "type": "text" },
      "categoryName":    { "type": "text" },
      "category_id":     { "type": "integer" },
      "mrpPrice":        { "type": "float" },
      "discountedPrice": { "type": "float" },
      "quantity":        { "type": "integer" },
      "imageUrl":        { "type": "keyword" }
    }
  }
}`

// EnsureIndex creates the product index when it is missing. With recreate
// set, an existing index is dropped first.
func (c *Client) EnsureIndex(ctx context.Context, recreate bool) (created bool, err error) {
	exists, err := c.indexExists(ctx)
	if err != nil {
		return false, err
	}

	if exists && recreate {
		res, err := c.es.Indices.Delete([]string{c.index}, c.es.Indices.Delete.WithContext(ctx))
		if err != nil {
			return false, fmt.Errorf("elastic: delete index: %w", err)
		}
		defer drain(res)
		if res.IsError() {
			return false, responseError("delete index", res)
		}
		exists = false
	}
	if exists {
		return false, nil
	}

	res, err := c.es.Indices.Create(c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return false, fmt.Errorf("elastic: create index: %w", err)
	}
	defer drain(res)
	if res.IsError() {
		return false, responseError("create index", res)
	}
	return true, nil
}

func (c *Client) indexExists(ctx context.Context) (bool, error) {
	res, err := c.es.Indices.Exists([]string{c.index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("elastic: index exists: %w", err)
	}
	defer drain(res)
	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("elastic: index exists: %s", res.Status())
	}
}

// BulkStats summarizes a bulk indexing run.
type BulkStats struct {
	Indexed uint64
	Failed  uint64
}

// BulkIndexer streams product documents into the index keyed by product id.
type BulkIndexer struct {
	bi       esutil.BulkIndexer
	onFailed func(id string, reason string)
}

// NewBulkIndexer starts a bulk indexer. onFailed, when non-nil, is called for
// every document the server rejects.
func (c *Client) NewBulkIndexer(workers int, onFailed func(id, reason string)) (*BulkIndexer, error) {
	bi, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     c.es,
		Index:      c.index,
		NumWorkers: max(workers, 1),
		FlushBytes: 1 << 20,
		Refresh:    "wait_for",
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: create bulk indexer: %w", err)
	}
	return &BulkIndexer{bi: bi, onFailed: onFailed}, nil
}

// Add queues p for indexing.
func (b *BulkIndexer) Add(ctx context.Context, p models.Product) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("elastic: encode product %d: %w", p.ID, err)
	}
	return b.bi.Add(ctx, esutil.BulkIndexerItem{
		Action:     "index",
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       bytes.NewReader(doc),
		OnFailure: func(_ context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
			if b.onFailed == nil {
				return
			}
			if err != nil {
				b.onFailed(item.DocumentID, err.Error())
				return
			}
			b.onFailed(item.DocumentID, res.Error.Type+": "+res.Error.Reason)
		},
	})
}

// Close flushes queued documents and reports the totals.
func (b *BulkIndexer) Close(ctx context.Context) (BulkStats, error) {
	if err := b.bi.Close(ctx); err != nil {
		return BulkStats{}, fmt.Errorf("elastic: flush bulk indexer: %w", err)
	}
	stats := b.bi.Stats()
	return BulkStats{Indexed: stats.NumIndexed, Failed: stats.NumFailed}, nil
}
