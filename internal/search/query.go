package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	currency = `(?:rs\.?|inr|₹|\$)?\s*`
	amount   = `(\d[\d,]*(?:\.\d+)?)`
)

var (
	betweenPattern = regexp.MustCompile(`(?i)\bbetween\s+` + currency + amount + `\s*(?:and|to|-)\s*` + currency + amount)
	underPattern   = regexp.MustCompile(`(?i)\b(?:under|below|less\s+than|max(?:imum)?)\s+` + currency + amount)
	overPattern    = regexp.MustCompile(`(?i)\b(?:over|above|more\s+than|min(?:imum)?)\s+` + currency + amount)
)

// PriceQuery is a free-text query with any embedded price constraints
// pulled out of it.
type PriceQuery struct {
	// Term is the text left after removing price phrases, or the whole raw
	// query when nothing else was left.
	Term     string
	MinPrice *float64
	MaxPrice *float64
}

// ParsePriceQuery extracts "between X and Y", "under N" and "over N" style
// constraints from raw. A between phrase takes priority: when it matches,
// the single-bound phrases are not considered. Otherwise under and over are
// applied independently and may both fire.
func ParsePriceQuery(raw string) PriceQuery {
	raw = strings.TrimSpace(raw)
	var pq PriceQuery
	residual := raw

	if m := betweenPattern.FindStringSubmatchIndex(residual); m != nil {
		lo, okLo := parseAmount(residual[m[2]:m[3]])
		hi, okHi := parseAmount(residual[m[4]:m[5]])
		if okLo && okHi {
			if lo > hi {
				lo, hi = hi, lo
			}
			pq.MinPrice, pq.MaxPrice = &lo, &hi
			residual = cut(residual, m[0], m[1])
		}
	} else {
		if m := underPattern.FindStringSubmatchIndex(residual); m != nil {
			if v, ok := parseAmount(residual[m[2]:m[3]]); ok {
				pq.MaxPrice = &v
				residual = cut(residual, m[0], m[1])
			}
		}
		if m := overPattern.FindStringSubmatchIndex(residual); m != nil {
			if v, ok := parseAmount(residual[m[2]:m[3]]); ok {
				pq.MinPrice = &v
				residual = cut(residual, m[0], m[1])
			}
		}
	}

	pq.Term = strings.Join(strings.Fields(residual), " ")
	if pq.Term == "" {
		pq.Term = raw
	}
	return pq
}

func cut(s string, start, end int) string {
	return s[:start] + " " + s[end:]
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
