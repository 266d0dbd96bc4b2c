package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/hongminglow/catalog-be/internal/apperr"
	"github.com/hongminglow/catalog-be/internal/http/respond"
	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/models/dto"
	"github.com/hongminglow/catalog-be/internal/pagination"
	"github.com/hongminglow/catalog-be/internal/storage"
)

// CatalogHandler serves the paginated category and product listings.
type CatalogHandler struct {
	store storage.CatalogStore
}

// NewCatalogHandler constructs the handler.
func NewCatalogHandler(store storage.CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// Register attaches catalog routes to the mux.
func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/products/categories", h.handleCategories)
	mux.HandleFunc("GET /api/categories", h.handleCategories)
	mux.HandleFunc("GET /api/products/category/{id}", h.handleCategoryProducts)
	mux.HandleFunc("GET /api/products", h.handleProducts)
	mux.HandleFunc("GET /api/products/all", h.handleProducts)
}

func (h *CatalogHandler) handleCategories(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromQuery(r.URL.Query(), pagination.DefaultCategoriesPerPage)

	categories, err := h.store.ListCategories(r.Context(), p.PerPage, p.Offset())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	total, err := h.store.CountCategories(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	respond.JSON(w, r, http.StatusOK, dto.CategoryPage{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: pagination.TotalPages(total, p.PerPage),
		Categories: categories,
	})
}

func (h *CatalogHandler) handleProducts(w http.ResponseWriter, r *http.Request) {
	p := pagination.FromQuery(r.URL.Query(), pagination.DefaultProductsPerPage)

	products, err := h.store.ListProducts(r.Context(), p.PerPage, p.Offset())
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	total, err := h.store.CountProducts(r.Context())
	if err != nil {
		respond.Err(w, r, err)
		return
	}

	respond.JSON(w, r, http.StatusOK, productPage(p, total, products))
}

// handleCategoryProducts never exposes more than pagination.CategoryCap
// products of a category, whatever the true count is.
func (h *CatalogHandler) handleCategoryProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(strings.TrimSpace(r.PathValue("id")), 10, 64)
	if err != nil {
		respond.Err(w, r, apperr.NewValidation("Invalid category id"))
		return
	}
	p := pagination.FromQuery(r.URL.Query(), pagination.DefaultProductsPerPage)

	trueTotal, err := h.store.CountProductsByCategory(r.Context(), categoryID)
	if err != nil {
		respond.Err(w, r, err)
		return
	}
	window := pagination.Capped(p, trueTotal, pagination.CategoryCap)

	var products []models.Product
	if !window.Empty {
		products, err = h.store.ListProductsByCategory(r.Context(), categoryID, window.Limit, window.Offset)
		if err != nil {
			respond.Err(w, r, err)
			return
		}
	}

	respond.JSON(w, r, http.StatusOK, dto.CategoryProductPage{
		CategoryID:  categoryID,
		ProductPage: productPage(p, window.Total, products),
	})
}

func productPage(p pagination.Params, total int64, products []models.Product) dto.ProductPage {
	if products == nil {
		products = []models.Product{}
	}
	return dto.ProductPage{
		Page:       p.Page,
		PerPage:    p.PerPage,
		Total:      total,
		TotalPages: pagination.TotalPages(total, p.PerPage),
		Products:   products,
	}
}
