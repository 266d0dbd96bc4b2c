package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/hlog"

	"github.com/hongminglow/catalog-be/internal/http/respond"
	"github.com/hongminglow/catalog-be/internal/pagination"
	"github.com/hongminglow/catalog-be/internal/search"
)

// SearchHandler serves the substring and full-text product searches.
type SearchHandler struct {
	svc *search.Service
}

// NewSearchHandler constructs the handler.
func NewSearchHandler(svc *search.Service) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Register attaches search routes to the mux.
func (h *SearchHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products/search", h.handleSubstring)
	mux.HandleFunc("GET /api/products/search/fulltext", h.handleFullText)
}

func (h *SearchHandler) handleSubstring(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	raw := strings.TrimSpace(q.Get("q"))
	p := pagination.FromQuery(q, pagination.DefaultSearchPerPage)

	page, err := h.svc.Substring(r.Context(), raw, p)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, page)
}

func (h *SearchHandler) handleFullText(w http.ResponseWriter, r *http.Request) {
	req := search.RequestFromQuery(r.URL.Query())

	result, err := h.svc.FullText(r.Context(), req)
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	if fb, ok := result.(search.FallbackResult); ok && fb.Reason != search.ReasonEmptyTerm {
		ev := hlog.FromRequest(r).Debug()
		if fb.Reason == search.ReasonEngineUnavailable {
			ev = hlog.FromRequest(r).Warn().Err(fb.Cause)
		}
		ev.Str("reason", string(fb.Reason)).Str("q", req.Raw).Msg("full-text search fell back to substring search")
	}
	respond.JSON(w, r, http.StatusOK, result.Unify())
}
