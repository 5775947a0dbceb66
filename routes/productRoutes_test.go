package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/store"
)

const upstreamCatalog = `[
	{"id": 1, "title": "Product 1", "price": 9.99, "description": "first", "category": "electronics", "image": "https://img.example/1.png", "rating": {"rate": 3.9, "count": 120}},
	{"id": 2, "title": "Product 2", "price": 19.99, "description": "second", "category": "clothing", "image": "https://img.example/2.png", "rating": {"rate": 4.1, "count": 25}},
	{"id": 3, "title": "Product 3", "price": 29.99, "description": "third", "category": "electronics", "image": "https://img.example/3.png", "rating": {"rate": 2.2, "count": 8}}
]`

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamCatalog))
	}))
	t.Cleanup(upstream.Close)
	return upstream
}

func TestProductEndpoints(t *testing.T) {
	st := store.NewMemStore()
	upstream := newUpstream(t)
	server := httptest.NewServer(newTestServer(st, catalog.NewClient(upstream.URL)))
	defer server.Close()

	client := resty.New().SetBaseURL(server.URL)

	resp, err := client.R().Get("/api/products/fetch-products")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var products []productPayload
	resp, err = client.R().SetResult(&products).Get("/api/products")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, products, 3)

	var electronics []productPayload
	resp, err = client.R().SetResult(&electronics).Get("/api/products/category/electronics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Len(t, electronics, 2)
	for _, p := range electronics {
		assert.Equal(t, "electronics", p.Category)
	}

	var categories []string
	resp, err = client.R().SetResult(&categories).Get("/api/products/categories")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.ElementsMatch(t, []string{"electronics", "clothing"}, categories)

	var product productPayload
	resp, err = client.R().SetResult(&product).Get("/api/products/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Product 1", product.Title)
	assert.Equal(t, uint(1), product.ID)

	resp, err = client.R().Get("/api/products/9999")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().Get("/api/products/not-a-number")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestReimportReplacesCatalog(t *testing.T) {
	st := store.NewMemStore()
	upstream := newUpstream(t)
	server := newTestServer(st, catalog.NewClient(upstream.URL))

	for i := 0; i < 2; i++ {
		w := doJSON(t, server, http.MethodGet, "/api/products/fetch-products", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, server, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []productPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Len(t, products, 3, "re-import must replace the catalog, not append to it")
}

func TestImportFailsWhenUpstreamIsDown(t *testing.T) {
	st := store.NewMemStore()
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()
	server := newTestServer(st, catalog.NewClient(upstream.URL))

	w := doJSON(t, server, http.MethodGet, "/api/products/fetch-products", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListByUnknownCategoryIsEmptyNotError(t *testing.T) {
	st := store.NewMemStore()
	seedCatalog(t, st)
	server := newTestServer(st, catalog.NewClient(""))

	w := doJSON(t, server, http.MethodGet, "/api/products/category/furniture", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []productPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	assert.Empty(t, products)
}
