package search

import (
	"context"

	"github.com/hongminglow/catalog-be/internal/models"
)

// Engine is the optional external full-text index.
type Engine interface {
	// Ping reports whether the engine is reachable.
	Ping(ctx context.Context) error
	// Search runs q and returns the matching page.
	Search(ctx context.Context, q EngineQuery) (EngineHits, error)
}

// EngineHits is a page of engine matches mapped to the product shape.
type EngineHits struct {
	Total    int64
	Products []models.Product
}

// Weighted fields, name > category name > description.
var searchFields = []string{"name^3", "categoryName^2", "description"}

// EngineQuery is everything the compound engine query is built from.
type EngineQuery struct {
	Term       string
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID *int64
	From       int
	Size       int
}

// Body renders the query DSL: at least one of an exact, a fuzzy and a
// prefix multi-field match must hit, filtered by the optional price range
// and category.
func (q EngineQuery) Body() map[string]any {
	should := []any{
		map[string]any{"multi_match": map[string]any{
			"query":  q.Term,
			"fields": searchFields,
			"type":   "best_fields",
		}},
		map[string]any{"multi_match": map[string]any{
			"query":          q.Term,
			"fields":         searchFields,
			"fuzziness":      "AUTO",
			"prefix_length":  1,
			"max_expansions": 50,
		}},
		map[string]any{"multi_match": map[string]any{
			"query":  q.Term,
			"fields": searchFields,
			"type":   "phrase_prefix",
		}},
	}

	filter := []any{}
	if q.MinPrice != nil || q.MaxPrice != nil {
		bounds := map[string]any{}
		if q.MinPrice != nil {
			bounds["gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			bounds["lte"] = *q.MaxPrice
		}
		filter = append(filter, map[string]any{"range": map[string]any{"discountedPrice": bounds}})
	}
	if q.CategoryID != nil {
		filter = append(filter, map[string]any{"term": map[string]any{"category_id": *q.CategoryID}})
	}

	return map[string]any{
		"from":             q.From,
		"size":             q.Size,
		"track_total_hits": true,
		"query": map[string]any{
			"bool": map[string]any{
				"should":               should,
				"minimum_should_match": 1,
				"filter":               filter,
			},
		},
	}
}
