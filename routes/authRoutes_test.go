package routes

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/store"
	"github.com/shopnest/api/utils"
)

func TestRegisterIssuesToken(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	user := registerUser(t, server, "fresh@example.com")
	require.NotZero(t, user.UserID)

	userID, err := utils.ParseToken(user.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, userID)
}

func TestRegisterProvisionsCartAndWishlist(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	user := registerUser(t, server, "provisioned@example.com")

	w := doJSON(t, server, http.MethodGet, "/api/cart", user.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := getCartPayload(t, w)
	assert.Equal(t, user.UserID, cart.UserID)
	assert.Empty(t, cart.Items)

	w = doJSON(t, server, http.MethodGet, "/api/wishlist", user.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	wishlist := getWishlistPayload(t, w)
	assert.Equal(t, user.UserID, wishlist.UserID)
	assert.Empty(t, wishlist.Products)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	registerUser(t, server, "taken@example.com")

	w := doJSON(t, server, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "other",
		"email":    "taken@example.com",
		"password": "another-password",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var payload errorPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "User already exists", payload.Message)
}

func TestRegisterRejectsIncompleteInput(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	w := doJSON(t, server, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "nobody",
		"password": "some-password",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	registered := registerUser(t, server, "login@example.com")

	w := doJSON(t, server, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "login@example.com",
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var payload authPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, registered.UserID, payload.UserID)

	userID, err := utils.ParseToken(payload.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, userID)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailureIsUniform(t *testing.T) {
	st := store.NewMemStore()
	server := newTestServer(st, catalog.NewClient(""))

	registerUser(t, server, "uniform@example.com")

	wrongPassword := doJSON(t, server, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "uniform@example.com",
		"password": "wrong-password",
	})
	unknownEmail := doJSON(t, server, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "nobody@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}
