// Package elastic implements search.Engine on top of Elasticsearch and
// provides the index maintenance used by the catalogctl index job.
package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/search"
)

var _ search.Engine = (*Client)(nil)

// defaultProbeTimeout bounds Ping, which runs ahead of every full-text query.
const defaultProbeTimeout = 2 * time.Second

// Client talks to a single Elasticsearch index.
type Client struct {
	es           *elasticsearch.Client
	index        string
	probeTimeout time.Duration
}

// New creates a client for node. Requests are never retried: a failed probe
// sends the caller to the substring fallback instead.
func New(node, index string) (*Client, error) {
	if node == "" {
		return nil, errors.New("elastic: node address is required")
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{node},
		DisableRetry: true,
	})
	if err != nil {
		return nil, fmt.Errorf("elastic: create client: %w", err)
	}
	return &Client{es: es, index: index, probeTimeout: defaultProbeTimeout}, nil
}

// Index returns the configured index name.
func (c *Client) Index() string {
	return c.index
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("elastic: ping: %w", err)
	}
	defer drain(res)
	if res.IsError() {
		return fmt.Errorf("elastic: ping: %s", res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Total json.RawMessage `json:"total"`
		Hits  []struct {
			ID     string         `json:"_id"`
			Source models.Product `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (c *Client) Search(ctx context.Context, q search.EngineQuery) (search.EngineHits, error) {
	body, err := json.Marshal(q.Body())
	if err != nil {
		return search.EngineHits{}, fmt.Errorf("elastic: encode query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return search.EngineHits{}, fmt.Errorf("elastic: search: %w", err)
	}
	defer drain(res)
	if res.IsError() {
		return search.EngineHits{}, responseError("search", res)
	}

	var decoded searchResponse
	if err := json.NewDecoder(res.Body).Decode(&decoded); err != nil {
		return search.EngineHits{}, fmt.Errorf("elastic: decode search response: %w", err)
	}

	total, err := parseTotal(decoded.Hits.Total)
	if err != nil {
		return search.EngineHits{}, err
	}

	products := make([]models.Product, 0, len(decoded.Hits.Hits))
	for _, hit := range decoded.Hits.Hits {
		p := hit.Source
		if id, err := strconv.ParseInt(hit.ID, 10, 64); err == nil {
			p.ID = id
		}
		products = append(products, p)
	}
	return search.EngineHits{Total: total, Products: products}, nil
}

// parseTotal accepts both the {"value": n} object and the bare number
// older servers return.
func parseTotal(raw json.RawMessage) (int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}
	var obj struct {
		Value int64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value, nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("elastic: decode hits total: %w", err)
	}
	return n, nil
}

func responseError(op string, res *esapi.Response) error {
	var body struct {
		Error struct {
			Type   string `json:"type"`
			Reason string `json:"reason"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil || body.Error.Type == "" {
		return fmt.Errorf("elastic: %s: %s", op, res.Status())
	}
	return fmt.Errorf("elastic: %s: %s: %s: %s", op, res.Status(), body.Error.Type, body.Error.Reason)
}

func drain(res *esapi.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}
