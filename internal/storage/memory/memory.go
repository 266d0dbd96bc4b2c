// Package memory is a test double for the storage interfaces. It follows the
// Postgres store's ordering and matching rules and adds seeding helpers, a
// call counter and an injectable error. No binary wires it; only tests
// import it.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/storage"
)

var (
	_ storage.UserStore    = (*Store)(nil)
	_ storage.CatalogStore = (*Store)(nil)
	_ storage.Pinger       = (*Store)(nil)
)

// Store keeps users, categories and products in memory.
type Store struct {
	mu         sync.Mutex
	users      []models.User
	categories []models.Category
	products   []models.Product
	calls      int

	// Err, when set, is returned by every method.
	Err error
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddCategory appends a category, assigning the next id when c.ID is 0.
func (s *Store) AddCategory(c models.Category) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = int64(len(s.categories) + 1)
	}
	s.categories = append(s.categories, c)
	slices.SortFunc(s.categories, func(a, b models.Category) int { return int(a.ID - b.ID) })
	return c
}

// AddProduct appends a product, assigning the next id when p.ID is 0.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == 0 {
		p.ID = int64(len(s.products) + 1)
	}
	p.CategoryName = ""
	s.products = append(s.products, p)
	slices.SortFunc(s.products, func(a, b models.Product) int { return int(a.ID - b.ID) })
	return p
}

// Calls is the number of storage methods invoked so far.
func (s *Store) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Store) enter() error {
	s.calls++
	return s.Err
}

func (s *Store) CreateUser(_ context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return models.User{}, err
	}
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	user.ID = int64(len(s.users) + 1)
	user.CreatedAt = time.Now()
	s.users = append(s.users, user)
	return user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return models.User{}, err
	}
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context, limit, offset int) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	return window(s.categories, limit, offset), nil
}

func (s *Store) CountCategories(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return 0, err
	}
	return int64(len(s.categories)), nil
}

func (s *Store) ListProducts(_ context.Context, limit, offset int) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	return window(s.products, limit, offset), nil
}

func (s *Store) CountProducts(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return 0, err
	}
	return int64(len(s.products)), nil
}

func (s *Store) ListProductsByCategory(_ context.Context, categoryID int64, limit, offset int) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	return window(s.filter(byCategory(categoryID)), limit, offset), nil
}

func (s *Store) CountProductsByCategory(_ context.Context, categoryID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return 0, err
	}
	return int64(len(s.filter(byCategory(categoryID)))), nil
}

func (s *Store) SearchProducts(_ context.Context, term string, limit, offset int) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return nil, err
	}
	return window(s.filter(containing(term)), limit, offset), nil
}

func (s *Store) CountSearchProducts(_ context.Context, term string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enter(); err != nil {
		return 0, err
	}
	return int64(len(s.filter(containing(term)))), nil
}

func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enter()
}

func (s *Store) filter(keep func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func byCategory(id int64) func(models.Product) bool {
	return func(p models.Product) bool { return p.CategoryID == id }
}

func containing(term string) func(models.Product) bool {
	term = strings.ToLower(term)
	return func(p models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) || strings.Contains(strings.ToLower(p.Description), term)
	}
}

func window[T any](rows []T, limit, offset int) []T {
	out := make([]T, 0, max(limit, 0))
	if offset >= len(rows) || limit <= 0 {
		return out
	}
	end := min(offset+limit, len(rows))
	return append(out, rows[offset:end]...)
}
