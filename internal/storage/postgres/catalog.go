package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/catalog-be/internal/models"
)

const productColumns = `id, category_id, name, description, mrp_price, discounted_price, quantity, image_url`

// ListCategories returns one page of categories.
func (s *Store) ListCategories(ctx context.Context, limit, offset int) ([]models.Category, error) {
	const query = `SELECT id, name, description FROM categories ORDER BY id ASC LIMIT $1 OFFSET $2`
	rows, err := s.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0, limit)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CountCategories returns the number of categories.
func (s *Store) CountCategories(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// ListProducts returns one page of the full product list.
func (s *Store) ListProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id ASC LIMIT $1 OFFSET $2`
	return s.queryProducts(ctx, limit, query, limit, offset)
}

// CountProducts returns the number of products.
func (s *Store) CountProducts(ctx context.Context) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM products`)
}

// ListProductsByCategory returns one page of a category's products.
func (s *Store) ListProductsByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	return s.queryProducts(ctx, limit, query, categoryID, limit, offset)
}

// CountProductsByCategory returns the true number of products in a category.
func (s *Store) CountProductsByCategory(ctx context.Context, categoryID int64) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID)
}

// SearchProducts returns one page of products whose name or description
// contains term, ignoring case.
func (s *Store) SearchProducts(ctx context.Context, term string, limit, offset int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $1 OR description ILIKE $1 ORDER BY id ASC LIMIT $2 OFFSET $3`
	return s.queryProducts(ctx, limit, query, containsPattern(term), limit, offset)
}

// CountSearchProducts counts the rows SearchProducts would page through.
func (s *Store) CountSearchProducts(ctx context.Context, term string) (int64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM products WHERE name ILIKE $1 OR description ILIKE $1`, containsPattern(term))
}

func (s *Store) queryProducts(ctx context.Context, capacity int, query string, args ...any) ([]models.Product, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, capacity)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	return products, nil
}

func scanProduct(rows pgx.Rows) (models.Product, error) {
	var p models.Product
	if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.MRPPrice, &p.DiscountedPrice, &p.Quantity, &p.ImageURL); err != nil {
		return models.Product{}, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

func (s *Store) count(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	if err := s.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term literally anywhere.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
