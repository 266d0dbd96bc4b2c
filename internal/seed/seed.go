// Package seed fills an empty catalog with the reference categories and
// generated products.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/hongminglow/catalog-be/internal/models"
)

// DefaultPerCategory is how many products each category gets.
const DefaultPerCategory = 25

// Store is the write side the seeder needs.
type Store interface {
	UpsertCategory(ctx context.Context, c models.Category) (int64, error)
	CountProductsByCategory(ctx context.Context, categoryID int64) (int64, error)
	InsertProducts(ctx context.Context, products []models.Product) (int64, error)
}

// Generator produces product rows. The same seed yields the same products.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// ProductName is "<brand> <model>", with a numeric variant suffix from the
// eleventh product on so names stay unique within a category.
func ProductName(c Category, i int) string {
	name := c.Brands[i%len(c.Brands)] + " " + c.Models[i%len(c.Models)]
	if i >= 10 {
		name += fmt.Sprintf(" %d", 100+i)
	}
	return name
}

// Products generates n products for the category at position idx of
// Catalog, stored under categoryID.
func (g *Generator) Products(idx int, categoryID int64, n int) []models.Product {
	c := Catalog[idx]
	out := make([]models.Product, 0, n)
	for i := range n {
		mrp := round2(g.rnd.Float64()*9000 + 500)
		discounted := round2(mrp * (0.7 + g.rnd.Float64()*0.25))
		out = append(out, models.Product{
			CategoryID:      categoryID,
			Name:            ProductName(c, i),
			Description:     descriptions[(i+1+idx)%len(descriptions)],
			MRPPrice:        mrp,
			DiscountedPrice: discounted,
			Quantity:        5 + g.rnd.IntN(200),
			ImageURL:        fmt.Sprintf("https://picsum.photos/seed/%s/480/320", url.PathEscape(fmt.Sprintf("%s-%d", c.Name, i+1))),
		})
	}
	return out
}

// Report summarizes a seeding run.
type Report struct {
	Categories int
	Products   int64
	Skipped    int
}

// Run upserts every reference category and inserts perCategory products into
// each category that has none yet. Re-running it is safe.
func Run(ctx context.Context, store Store, gen *Generator, perCategory int, log zerolog.Logger) (Report, error) {
	var report Report
	for idx, c := range Catalog {
		id, err := store.UpsertCategory(ctx, c.Model())
		if err != nil {
			return report, err
		}
		report.Categories++

		existing, err := store.CountProductsByCategory(ctx, id)
		if err != nil {
			return report, fmt.Errorf("count products of %q: %w", c.Name, err)
		}
		if existing > 0 {
			report.Skipped++
			log.Debug().Str("category", c.Name).Int64("existing", existing).Msg("category already has products")
			continue
		}

		n, err := store.InsertProducts(ctx, gen.Products(idx, id, perCategory))
		if err != nil {
			return report, err
		}
		report.Products += n
		log.Info().Str("category", c.Name).Int64("category_id", id).Int64("products", n).Msg("seeded category")
	}
	return report, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
