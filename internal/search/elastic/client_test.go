package elastic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/search"
)

type recorded struct {
	method string
	path   string
	body   string
}

type fakeES struct {
	mu       sync.Mutex
	requests []recorded
	handle   func(w http.ResponseWriter, r *http.Request, body string)
}

func newFakeES(t *testing.T, handle func(w http.ResponseWriter, r *http.Request, body string)) (*Client, *fakeES) {
	t.Helper()
	f := &fakeES{handle: handle}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recorded{method: r.Method, path: r.URL.Path, body: string(raw)})
		f.mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		f.handle(w, r, string(raw))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, "products")
	require.NoError(t, err)
	return c, f
}

func (f *fakeES) last() recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func TestNewRequiresNode(t *testing.T) {
	_, err := New("", "products")
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, http.MethodHead, f.last().method)
}

func TestPingErrorStatus(t *testing.T) {
	c, _ := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.Error(t, c.Ping(context.Background()))
}

func TestPingUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c, err := New(addr, "products")
	require.NoError(t, err)
	assert.Error(t, c.Ping(context.Background()))
}

func TestPingTimesOut(t *testing.T) {
	c, _ := newFakeES(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})
	c.probeTimeout = 50 * time.Millisecond

	start := time.Now()
	err := c.Ping(context.Background())
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSearchMapsHits(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		_, _ = io.WriteString(w, `{
		  "hits": {
		    "total": {"value": 42, "relation": "eq"},
		    "hits": [
		      {"_id": "17", "_source": {"id": 99, "category_id": 1, "name": "Boat Rockerz 450", "description": "Wireless", "mrpPrice": 2999, "discountedPrice": 1499.5, "quantity": 8, "imageUrl": "https://picsum.photos/seed/17/400/400", "categoryName": "Electronics"}},
		      {"_id": "not-a-number", "_source": {"id": 5, "name": "Sony WH-1000XM5"}}
		    ]
		  }
		}`)
	})

	cat := int64(1)
	hits, err := c.Search(context.Background(), search.EngineQuery{Term: "boat", CategoryID: &cat, From: 10, Size: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(42), hits.Total)
	require.Len(t, hits.Products, 2)
	assert.Equal(t, models.Product{
		ID:              17,
		CategoryID:      1,
		Name:            "Boat Rockerz 450",
		Description:     "Wireless",
		MRPPrice:        2999,
		DiscountedPrice: 1499.5,
		Quantity:        8,
		ImageURL:        "https://picsum.photos/seed/17/400/400",
		CategoryName:    "Electronics",
	}, hits.Products[0])
	assert.Equal(t, int64(5), hits.Products[1].ID)

	req := f.last()
	assert.Equal(t, "/products/_search", req.path)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(req.body), &sent))
	assert.Equal(t, 10.0, sent["from"])
	assert.Equal(t, 10.0, sent["size"])
}

func TestSearchLegacyNumericTotal(t *testing.T) {
	c, _ := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		_, _ = io.WriteString(w, `{"hits": {"total": 3, "hits": []}}`)
	})

	hits, err := c.Search(context.Background(), search.EngineQuery{Term: "pen", Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Total)
	assert.NotNil(t, hits.Products)
}

func TestSearchErrorResponse(t *testing.T) {
	c, _ := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": {"type": "parsing_exception", "reason": "bad query"}, "status": 400}`)
	})

	_, err := c.Search(context.Background(), search.EngineQuery{Term: "pen", Size: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing_exception")
}

func TestEnsureIndexCreatesMissing(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, r *http.Request, _ string) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, `{"acknowledged": true}`)
	})

	created, err := c.EnsureIndex(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, created)

	req := f.last()
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/products", req.path)
	assert.Contains(t, req.body, `"discountedPrice": { "type": "float" }`)
}

func TestEnsureIndexKeepsExisting(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		w.WriteHeader(http.StatusOK)
	})

	created, err := c.EnsureIndex(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Len(t, f.requests, 1)
}

func TestEnsureIndexRecreate(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, _ string) {
		_, _ = io.WriteString(w, `{"acknowledged": true}`)
	})

	created, err := c.EnsureIndex(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, created)

	var methods []string
	for _, r := range f.requests {
		methods = append(methods, r.method)
	}
	assert.Equal(t, []string{http.MethodHead, http.MethodDelete, http.MethodPut}, methods)
}

func TestBulkIndexer(t *testing.T) {
	c, f := newFakeES(t, func(w http.ResponseWriter, _ *http.Request, body string) {
		lines := strings.Split(strings.TrimSpace(body), "\n")
		items := make([]string, 0, len(lines)/2)
		for i := 0; i < len(lines); i += 2 {
			var action struct {
				Index struct {
					ID string `json:"_id"`
				} `json:"index"`
			}
			_ = json.Unmarshal([]byte(lines[i]), &action)
			if action.Index.ID == "2" {
				items = append(items, `{"index": {"_id": "2", "status": 400, "error": {"type": "mapper_parsing_exception", "reason": "bad price"}}}`)
				continue
			}
			items = append(items, `{"index": {"_id": "`+action.Index.ID+`", "status": 201, "result": "created"}}`)
		}
		_, _ = io.WriteString(w, `{"took": 1, "errors": true, "items": [`+strings.Join(items, ",")+`]}`)
	})

	var failed []string
	bi, err := c.NewBulkIndexer(1, func(id, reason string) {
		failed = append(failed, id+" "+reason)
	})
	require.NoError(t, err)

	ctx := context.Background()
	for _, p := range []models.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}} {
		require.NoError(t, bi.Add(ctx, p))
	}
	stats, err := bi.Close(ctx)
	require.NoError(t, err)

	assert.Equal(t, BulkStats{Indexed: 2, Failed: 1}, stats)
	assert.Equal(t, []string{"2 mapper_parsing_exception: bad price"}, failed)
	assert.Equal(t, "/products/_bulk", f.last().path)
}
