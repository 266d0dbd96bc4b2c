package search

import (
	"context"
	"fmt"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/models/dto"
	"github.com/hongminglow/catalog-be/internal/pagination"
	"github.com/hongminglow/catalog-be/internal/storage"
)

// FallbackReason says why a full-text search was not answered by the engine.
type FallbackReason string

const (
	ReasonEmptyTerm         FallbackReason = "empty_term"
	ReasonEngineDisabled    FallbackReason = "engine_disabled"
	ReasonEngineUnavailable FallbackReason = "engine_unavailable"
)

// Result is the outcome of a full-text search: exactly one of EngineResult
// or FallbackResult.
type Result interface {
	// Unify converts the result to the response every search endpoint shares.
	Unify() dto.SearchPage
	sealed()
}

// EngineResult is a page answered by the full-text engine.
type EngineResult struct {
	Query string
	Page  pagination.Params
	Hits  EngineHits
}

func (r EngineResult) Unify() dto.SearchPage {
	products := r.Hits.Products
	if products == nil {
		products = []models.Product{}
	}
	return dto.SearchPage{
		Query: r.Query,
		ProductPage: dto.ProductPage{
			Page:       r.Page.Page,
			PerPage:    r.Page.PerPage,
			Total:      r.Hits.Total,
			TotalPages: pagination.TotalPages(r.Hits.Total, r.Page.PerPage),
			Products:   products,
		},
	}
}

func (EngineResult) sealed() {}

// FallbackResult is a page produced without the engine.
type FallbackResult struct {
	Reason FallbackReason
	// Cause is the probe failure when Reason is ReasonEngineUnavailable.
	Cause error
	Page  dto.SearchPage
}

func (r FallbackResult) Unify() dto.SearchPage {
	return r.Page
}

func (FallbackResult) sealed() {}

// Service answers the substring and full-text search endpoints.
type Service struct {
	store  storage.CatalogStore
	engine Engine
}

// NewService creates a search service. engine may be nil when no full-text
// index is configured.
func NewService(store storage.CatalogStore, engine Engine) *Service {
	return &Service{store: store, engine: engine}
}

// EmptyPage is the response for a query with nothing to search for.
func EmptyPage(raw string, p pagination.Params) dto.SearchPage {
	return dto.SearchPage{
		Query: raw,
		ProductPage: dto.ProductPage{
			Page:     p.Page,
			PerPage:  p.PerPage,
			Products: []models.Product{},
		},
	}
}

// Substring pages through products whose name or description contains raw.
func (s *Service) Substring(ctx context.Context, raw string, p pagination.Params) (dto.SearchPage, error) {
	if raw == "" {
		return EmptyPage(raw, p), nil
	}

	products, err := s.store.SearchProducts(ctx, raw, p.PerPage, p.Offset())
	if err != nil {
		return dto.SearchPage{}, fmt.Errorf("substring search: %w", err)
	}
	total, err := s.store.CountSearchProducts(ctx, raw)
	if err != nil {
		return dto.SearchPage{}, fmt.Errorf("substring search count: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}

	return dto.SearchPage{
		Query: raw,
		ProductPage: dto.ProductPage{
			Page:       p.Page,
			PerPage:    p.PerPage,
			Total:      total,
			TotalPages: pagination.TotalPages(total, p.PerPage),
			Products:   products,
		},
	}, nil
}

// FullText answers req from the engine when it responds to a probe, and
// from the substring search over the raw query otherwise.
func (s *Service) FullText(ctx context.Context, req Request) (Result, error) {
	if req.Term == "" {
		return FallbackResult{Reason: ReasonEmptyTerm, Page: EmptyPage(req.Raw, req.Page)}, nil
	}

	if s.engine == nil {
		return s.fallback(ctx, req, ReasonEngineDisabled, nil)
	}
	if err := s.engine.Ping(ctx); err != nil {
		return s.fallback(ctx, req, ReasonEngineUnavailable, err)
	}

	hits, err := s.engine.Search(ctx, EngineQuery{
		Term:       req.Term,
		MinPrice:   req.MinPrice,
		MaxPrice:   req.MaxPrice,
		CategoryID: req.CategoryID,
		From:       req.Page.Offset(),
		Size:       req.Page.PerPage,
	})
	if err != nil {
		return nil, fmt.Errorf("full-text search: %w", err)
	}
	return EngineResult{Query: req.Raw, Page: req.Page, Hits: hits}, nil
}

func (s *Service) fallback(ctx context.Context, req Request, reason FallbackReason, cause error) (Result, error) {
	page, err := s.Substring(ctx, req.Raw, req.Page)
	if err != nil {
		return nil, err
	}
	return FallbackResult{Reason: reason, Cause: cause, Page: page}, nil
}
