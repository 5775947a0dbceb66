package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Shopnest API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/api/auth/register" - Create user account
- POST "/api/auth/login" - Access user account

PRODUCTS
- GET "/api/products/fetch-products" - Import the catalog from the upstream store
- GET "/api/products" - Get all products
- GET "/api/products/categories" - Get all product categories
- GET "/api/products/category/{category}" - Get products in a category
- GET "/api/products/{id}" - Get product by catalog ID

CART (bearer token required except creation)
- POST "/api/cart" - Create a cart for a user
- GET "/api/cart" - Get your cart
- POST "/api/cart/add" - Add a product to your cart
- DELETE "/api/cart/{productId}" - Remove a product from your cart
- PUT "/api/cart/{productId}" - Update a cart item's quantity

WISHLIST (bearer token required except creation)
- POST "/api/wishlist" - Create a wishlist for a user
- GET "/api/wishlist" - Get your wishlist
- POST "/api/wishlist/add" - Add a product to your wishlist
- DELETE "/api/wishlist/{productId}" - Remove a product from your wishlist`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
