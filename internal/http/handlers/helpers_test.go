package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/catalog-be/internal/auth"
	"github.com/hongminglow/catalog-be/internal/models"
	"github.com/hongminglow/catalog-be/internal/search"
	"github.com/hongminglow/catalog-be/internal/storage/memory"
)

const testSecret = "test-secret"

type harness struct {
	store  *memory.Store
	tokens *auth.TokenManager
	mux    *http.ServeMux
}

func newHarness(t *testing.T, engine search.Engine) *harness {
	t.Helper()
	store := memory.New()
	tokens := auth.NewTokenManager(testSecret, "catalog-test", auth.SessionTTL)
	hasher := auth.NewPasswordHasher("pepper", bcrypt.MinCost)

	mux := http.NewServeMux()
	NewAuthHandler(store, tokens, hasher, AuthOptions{
		PasswordMinLength: 5,
		Cookie:            CookieOptions{SameSite: http.SameSiteLaxMode},
	}).Register(mux)
	NewCatalogHandler(store).Register(mux)
	NewSearchHandler(search.NewService(store, engine)).Register(mux)
	NewHealthHandler(time.Now(), store, nil).Register(mux)

	return &harness{store: store, tokens: tokens, mux: mux}
}

// seed adds categories with the given product counts, naming products
// "<category> item <n>".
func (h *harness) seed(counts ...int) {
	for i, n := range counts {
		cat := h.store.AddCategory(models.Category{
			Name:        fmt.Sprintf("Category %d", i+1),
			Description: fmt.Sprintf("Description %d", i+1),
		})
		for j := 1; j <= n; j++ {
			h.store.AddProduct(models.Product{
				CategoryID:      cat.ID,
				Name:            fmt.Sprintf("%s item %d", cat.Name, j),
				Description:     "Sample product",
				MRPPrice:        float64(1000 + j),
				DiscountedPrice: float64(800 + j),
				Quantity:        j,
				ImageURL:        fmt.Sprintf("https://picsum.photos/seed/%d/400/400", j),
			})
		}
	}
}

func (h *harness) do(t *testing.T, method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.mux.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
