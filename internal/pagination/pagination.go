// Package pagination turns page query parameters into store offsets and
// computes the page counts reported to clients.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	// MaxPerPage bounds any requested page size.
	MaxPerPage = 100
	// MaxPage keeps (page-1)*perPage far from integer overflow.
	MaxPage = 1_000_000
	// CategoryCap is the most products a single category listing exposes.
	CategoryCap = 25
)

// Default page sizes per endpoint family.
const (
	DefaultCategoriesPerPage = 5
	DefaultProductsPerPage   = 10
	DefaultSearchPerPage     = 10
)

// Params is a validated page request. Page and PerPage are always >= 1.
type Params struct {
	Page    int
	PerPage int
}

// FromQuery reads page and page size from query values. The page size is
// taken from "limit", then "perPage", then defaultPerPage; a value that is
// missing, unparsable or below 1 falls through to the next source.
func FromQuery(q url.Values, defaultPerPage int) Params {
	page := 1
	if n, ok := parsePositive(q.Get("page")); ok {
		page = min(n, MaxPage)
	}

	perPage := defaultPerPage
	if n, ok := parsePositive(q.Get("limit")); ok {
		perPage = n
	} else if n, ok := parsePositive(q.Get("perPage")); ok {
		perPage = n
	}
	perPage = max(1, min(perPage, MaxPerPage))

	return Params{Page: page, PerPage: perPage}
}

// Offset is the number of rows preceding the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// TotalPages is max(1, ceil(total/perPage)).
func TotalPages(total int64, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	pages := (total + int64(perPage) - 1) / int64(perPage)
	return int(max(1, pages))
}

// Window is the slice of a capped listing the store should read.
type Window struct {
	// Total is the count reported to the client, never above the cap.
	Total int64
	// Limit and Offset are safe to pass to the store; Limit is 0 when Empty.
	Limit  int
	Offset int
	// Empty means the page lies entirely past the cap and no rows should be read.
	Empty bool
}

// Capped clamps a page request against a listing that must never expose more
// than limit rows, whatever trueTotal is.
func Capped(p Params, trueTotal int64, limit int) Window {
	w := Window{Total: min(max(trueTotal, 0), int64(limit)), Offset: p.Offset()}
	if w.Offset >= limit {
		w.Empty = true
		return w
	}
	w.Limit = min(p.PerPage, limit-w.Offset)
	return w
}

func parsePositive(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
