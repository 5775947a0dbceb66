package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/middlewares"
	"github.com/shopnest/api/models"
	"github.com/shopnest/api/store"
)

type createCartInput struct {
	UserID uint `json:"userId" binding:"required"`
}

type addToCartInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateQuantityInput struct {
	Quantity int `json:"quantity"`
}

func fetchOrCreateCart(ctx context.Context, carts store.CartStore, userID uint) (*models.Cart, error) {
	cart, err := carts.CartByUser(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	if err := carts.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// CreateCart is the registration-era creation endpoint: idempotent
// fetch-or-create keyed on the user id in the body.
func CreateCart(carts store.CartStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input createCartInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		cart, err := fetchOrCreateCart(ctx.Request.Context(), carts, input.UserID)
		if err != nil {
			log.Errorw("creating cart", "userId", input.UserID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, cart)
	}
}

func GetCart(carts store.CartStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		cart, err := carts.CartByUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
				return
			}
			log.Errorw("fetching cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, cart)
	}
}

// AddToCart merges the product into the caller's cart: an existing line item
// has its quantity incremented, otherwise a new item is appended. A missing
// or zero quantity counts as one.
func AddToCart(products store.ProductStore, carts store.CartStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var input addToCartInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		product, err := products.ProductByExternalID(ctx.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
				return
			}
			log.Errorw("fetching product", "productId", input.ProductID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		cart, err := carts.CartByUser(ctx.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
		} else if err != nil {
			log.Errorw("fetching cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		merged := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == product.ID {
				cart.Items[i].Quantity += quantity
				merged = true
				break
			}
		}
		if !merged {
			cart.Items = append(cart.Items, models.CartItem{ProductID: product.ID, Quantity: quantity})
		}

		if err := carts.SaveCart(ctx.Request.Context(), cart); err != nil {
			log.Errorw("saving cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		respondWithCart(ctx, carts, userID, log)
	}
}

// RemoveFromCart drops any line item referencing the product. Removing a
// product that is not in the cart succeeds without changing anything.
func RemoveFromCart(products store.ProductStore, carts store.CartStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		product, ok := resolveProductParam(ctx, products, log)
		if !ok {
			return
		}

		cart, err := carts.CartByUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
				return
			}
			log.Errorw("fetching cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		kept := cart.Items[:0]
		for _, item := range cart.Items {
			if item.ProductID != product.ID {
				kept = append(kept, item)
			}
		}
		cart.Items = kept

		if err := carts.SaveCart(ctx.Request.Context(), cart); err != nil {
			log.Errorw("saving cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		respondWithCart(ctx, carts, userID, log)
	}
}

// UpdateCartItemQuantity overwrites the line item's quantity verbatim. The
// route docs imply a minimum of one but no bound is enforced here.
func UpdateCartItemQuantity(products store.ProductStore, carts store.CartStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var input updateQuantityInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		product, ok := resolveProductParam(ctx, products, log)
		if !ok {
			return
		}

		cart, err := carts.CartByUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgCartNotFound)
				return
			}
			log.Errorw("fetching cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		updated := false
		for i := range cart.Items {
			if cart.Items[i].ProductID == product.ID {
				cart.Items[i].Quantity = input.Quantity
				updated = true
				break
			}
		}
		if !updated {
			sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
			return
		}

		if err := carts.SaveCart(ctx.Request.Context(), cart); err != nil {
			log.Errorw("saving cart", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		respondWithCart(ctx, carts, userID, log)
	}
}

// resolveProductParam resolves the :productId path segment to a product,
// writing the error response itself when it cannot.
func resolveProductParam(ctx *gin.Context, products store.ProductStore, log *zap.SugaredLogger) (*models.Product, bool) {
	externalID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return nil, false
	}

	product, err := products.ProductByExternalID(ctx.Request.Context(), uint(externalID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			return nil, false
		}
		log.Errorw("fetching product", "productId", externalID, "error", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
		return nil, false
	}
	return product, true
}

// respondWithCart re-reads the cart so the response carries joined product
// data, same as a GET.
func respondWithCart(ctx *gin.Context, carts store.CartStore, userID uint, log *zap.SugaredLogger) {
	cart, err := carts.CartByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Errorw("reloading cart", "userId", userID, "error", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}
