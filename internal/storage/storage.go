package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/catalog-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by the auth handlers.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

// CatalogStore captures the read paths of the product catalog. Every list
// method orders by primary key ascending.
type CatalogStore interface {
	ListCategories(ctx context.Context, limit, offset int) ([]models.Category, error)
	CountCategories(ctx context.Context) (int64, error)

	ListProducts(ctx context.Context, limit, offset int) ([]models.Product, error)
	CountProducts(ctx context.Context) (int64, error)

	ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]models.Product, error)
	CountProductsByCategory(ctx context.Context, categoryID int64) (int64, error)

	// SearchProducts matches term as a case-insensitive substring of the
	// product name or description.
	SearchProducts(ctx context.Context, term string, limit, offset int) ([]models.Product, error)
	CountSearchProducts(ctx context.Context, term string) (int64, error)
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
