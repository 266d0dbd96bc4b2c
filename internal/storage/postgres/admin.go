package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hongminglow/catalog-be/internal/models"
)

// The methods in this file back the catalogctl batch jobs, not the API.

// UpsertCategory inserts a category or refreshes the description of the
// existing one with the same name, returning its id.
func (s *Store) UpsertCategory(ctx context.Context, c models.Category) (int64, error) {
	const query = `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
		RETURNING id`
	var id int64
	if err := s.db.QueryRow(ctx, query, c.Name, c.Description).Scan(&id); err != nil {
		return 0, fmt.Errorf("upsert category %q: %w", c.Name, err)
	}
	return id, nil
}

// InsertProducts bulk-loads products with COPY and returns the row count.
func (s *Store) InsertProducts(ctx context.Context, products []models.Product) (int64, error) {
	columns := []string{"category_id", "name", "description", "mrp_price", "discounted_price", "quantity", "image_url"}
	src := pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
		p := products[i]
		return []any{p.CategoryID, p.Name, p.Description, p.MRPPrice, p.DiscountedPrice, p.Quantity, p.ImageURL}, nil
	})
	n, err := s.db.CopyFrom(ctx, pgx.Identifier{"products"}, columns, src)
	if err != nil {
		return 0, fmt.Errorf("copy products: %w", err)
	}
	return n, nil
}

// EachIndexedProduct streams every product joined with its category name,
// in id order, to fn. Iteration stops at the first error fn returns.
func (s *Store) EachIndexedProduct(ctx context.Context, fn func(models.Product) error) error {
	const query = `
		SELECT p.id, p.category_id, p.name, p.description, p.mrp_price, p.discounted_price,
		       p.quantity, p.image_url, COALESCE(c.name, '')
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id ASC`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return fmt.Errorf("list indexed products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.MRPPrice, &p.DiscountedPrice, &p.Quantity, &p.ImageURL, &p.CategoryName); err != nil {
			return fmt.Errorf("scan indexed product: %w", err)
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("list indexed products: %w", err)
	}
	return nil
}
