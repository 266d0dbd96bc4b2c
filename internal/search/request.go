package search

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/hongminglow/catalog-be/internal/pagination"
)

// Request is a full-text search request after boundary parsing.
type Request struct {
	// Raw is the trimmed query as typed; it is echoed back to the client and
	// used verbatim by the substring fallback.
	Raw        string
	Term       string
	MinPrice   *float64
	MaxPrice   *float64
	CategoryID *int64
	Page       pagination.Params
}

// RequestFromQuery builds a Request from URL query values. Explicit
// minPrice/maxPrice parameters override bounds parsed out of q; any
// parameter that fails to parse is treated as absent.
func RequestFromQuery(q url.Values) Request {
	raw := strings.TrimSpace(q.Get("q"))
	parsed := ParsePriceQuery(raw)

	req := Request{
		Raw:      raw,
		Term:     parsed.Term,
		MinPrice: parsed.MinPrice,
		MaxPrice: parsed.MaxPrice,
		Page:     pagination.FromQuery(q, pagination.DefaultSearchPerPage),
	}
	if v, ok := parsePrice(q.Get("minPrice")); ok {
		req.MinPrice = &v
	}
	if v, ok := parsePrice(q.Get("maxPrice")); ok {
		req.MaxPrice = &v
	}
	if id, err := strconv.ParseInt(strings.TrimSpace(q.Get("categoryId")), 10, 64); err == nil && id > 0 {
		req.CategoryID = &id
	}
	return req
}

func parsePrice(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
