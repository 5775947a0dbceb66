package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/models"
	"github.com/shopnest/api/store"
)

const testJWTSecret = "test-secret"

func newTestServer(st store.Store, client *catalog.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logg := zap.NewNop().Sugar()

	server := gin.New()
	DefaultRoutes(server)
	AuthRoutes(server, st, testJWTSecret, logg)
	ProductRoutes(server, st, client, logg)
	CartRoutes(server, st, testJWTSecret, logg)
	WishlistRoutes(server, st, testJWTSecret, logg)
	return server
}

func seedCatalog(t *testing.T, st store.Store) {
	t.Helper()
	err := st.ReplaceCatalog(context.Background(), []models.Product{
		{ExternalID: 1, Title: "Product 1", Price: 9.99, Category: "electronics"},
		{ExternalID: 2, Title: "Product 2", Price: 19.99, Category: "clothing"},
		{ExternalID: 3, Title: "Product 3", Price: 29.99, Category: "electronics"},
	})
	require.NoError(t, err)
}

func doJSON(t *testing.T, server *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

type authPayload struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
}

func registerUser(t *testing.T, server *gin.Engine, email string) authPayload {
	t.Helper()

	w := doJSON(t, server, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "tester",
		"email":    email,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var payload authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

type productPayload struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

type cartItemPayload struct {
	Quantity int            `json:"quantity"`
	Product  productPayload `json:"product"`
}

type cartPayload struct {
	UserID uint              `json:"userId"`
	Items  []cartItemPayload `json:"items"`
}

type wishlistPayload struct {
	UserID   uint             `json:"userId"`
	Products []productPayload `json:"products"`
}

type errorPayload struct {
	Message string `json:"message"`
}
