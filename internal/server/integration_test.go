package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/hongminglow/catalog-be/internal/config"
	"github.com/hongminglow/catalog-be/internal/models/dto"
	"github.com/hongminglow/catalog-be/internal/seed"
	"github.com/hongminglow/catalog-be/internal/server"
	"github.com/hongminglow/catalog-be/internal/storage/postgres"
)

// TestCatalogIntegration runs the API against a throwaway Postgres container.
func TestCatalogIntegration(t *testing.T) {
	if os.Getenv("RUN_DB_INTEGRATION") != "true" {
		t.Skip("set RUN_DB_INTEGRATION=true to run this integration test")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("catalog"),
		tcpostgres.WithUsername("catalog"),
		tcpostgres.WithPassword("catalog"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := postgres.NewStore(ctx, postgres.Options{DatabaseURL: dsn, MaxConns: 4, Migrate: true, Logger: zerolog.Nop()})
	require.NoError(t, err)
	t.Cleanup(store.Close)

	report, err := seed.Run(ctx, store, seed.NewGenerator(7), 30, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, int64(15*30), report.Products)

	cfg := config.Config{
		Port:              "0",
		JWTSecret:         "integration-secret",
		JWTIssuer:         "catalog-integration",
		Pepper:            "pepper",
		SaltRounds:        4,
		PasswordMinLength: 5,
		CORSOrigins:       []string{"http://localhost:5173"},
		CookieSameSite:    http.SameSiteLaxMode,
	}
	ts := httptest.NewServer(server.Handler(cfg, zerolog.Nop(), store, nil))
	t.Cleanup(ts.Close)

	t.Run("auth flow", func(t *testing.T) {
		resp := post(t, ts.URL+"/api/auth/signup", `{"firstname":"Meera","lastname":"Iyer","email":"meera@example.com","password":"12345"}`)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		resp = post(t, ts.URL+"/api/auth/signup", `{"firstname":"Meera","lastname":"Iyer","email":"meera@example.com","password":"12345"}`)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		resp = post(t, ts.URL+"/api/auth/login", `{"email":"meera@example.com","password":"12345"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cookies := resp.Cookies()
		require.NotEmpty(t, cookies)

		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/auth/check", nil)
		require.NoError(t, err)
		req.AddCookie(cookies[0])
		check, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer check.Body.Close()
		assert.Equal(t, http.StatusOK, check.StatusCode)
	})

	t.Run("category cap", func(t *testing.T) {
		var page dto.CategoryProductPage
		getJSON(t, ts.URL+"/api/products/category/1?page=3", &page)
		assert.Equal(t, int64(25), page.Total)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Products, 5)

		getJSON(t, ts.URL+"/api/products/category/1?page=4", &page)
		assert.Empty(t, page.Products)
	})

	t.Run("substring search and fallback agree", func(t *testing.T) {
		var plain, fulltext dto.SearchPage
		getJSON(t, ts.URL+"/api/products/search?q=samsung", &plain)
		getJSON(t, ts.URL+"/api/products/search/fulltext?q=samsung", &fulltext)

		assert.Positive(t, plain.Total)
		assert.Equal(t, plain, fulltext)
		for _, p := range plain.Products {
			assert.Contains(t, strings.ToLower(p.Name+" "+p.Description), "samsung")
		}
	})
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, url string, out any) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
