package dto

import "github.com/hongminglow/catalog-be/internal/models"

type CategoryPage struct {
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
	Categories []models.Category `json:"categories"`
}

type ProductPage struct {
	Page       int              `json:"page"`
	PerPage    int              `json:"perPage"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"totalPages"`
	Products   []models.Product `json:"products"`
}

type CategoryProductPage struct {
	CategoryID int64 `json:"categoryId"`
	ProductPage
}

// SearchPage is shared by the substring and full-text search endpoints.
type SearchPage struct {
	Query string `json:"q"`
	ProductPage
}
