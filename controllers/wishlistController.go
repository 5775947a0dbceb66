package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/middlewares"
	"github.com/shopnest/api/models"
	"github.com/shopnest/api/store"
)

type createWishlistInput struct {
	UserID uint `json:"userId" binding:"required"`
}

type addToWishlistInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

func fetchOrCreateWishlist(ctx context.Context, wishlists store.WishlistStore, userID uint) (*models.Wishlist, error) {
	wishlist, err := wishlists.WishlistByUser(ctx, userID)
	if err == nil {
		return wishlist, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	wishlist = &models.Wishlist{UserID: userID, Products: []models.Product{}}
	if err := wishlists.SaveWishlist(ctx, wishlist); err != nil {
		return nil, err
	}
	return wishlist, nil
}

// CreateWishlist mirrors CreateCart: idempotent fetch-or-create.
func CreateWishlist(wishlists store.WishlistStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var input createWishlistInput
		if err := ctx.ShouldBindJSON(&input); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		wishlist, err := fetchOrCreateWishlist(ctx.Request.Context(), wishlists, input.UserID)
		if err != nil {
			log.Errorw("creating wishlist", "userId", input.UserID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, wishlist)
	}
}

func GetWishlist(wishlists store.WishlistStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		wishlist, err := wishlists.WishlistByUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgWishlistNotFound)
				return
			}
			log.Errorw("fetching wishlist", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, wishlist)
	}
}

// AddToWishlist has set semantics: adding a product that is already present
// changes nothing and still succeeds.
func AddToWishlist(products store.ProductStore, wishlists store.WishlistStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middlewares.CurrentUserID(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		var input addToWishlistInput
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

		wishlist, err := wishlists.WishlistByUser(ctx.Request.Context(), userID)
		if errors.Is(err, store.ErrNotFound) {
			wishlist = &models.Wishlist{UserID: userID, Products: []models.Product{}}
		} else if err != nil {
			log.Errorw("fetching wishlist", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		present := false
		for _, p := range wishlist.Products {
			if p.ID == product.ID {
				present = true
				break
			}
		}
		if !present {
			wishlist.Products = append(wishlist.Products, *product)
			if err := wishlists.SaveWishlist(ctx.Request.Context(), wishlist); err != nil {
				log.Errorw("saving wishlist", "userId", userID, "error", err)
				sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
				return
			}
		}

		respondWithWishlist(ctx, wishlists, userID, log)
	}
}

// RemoveFromWishlist drops the product reference; removing an absent product
// is a no-op success.
func RemoveFromWishlist(products store.ProductStore, wishlists store.WishlistStore, log *zap.SugaredLogger) gin.HandlerFunc {
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

		wishlist, err := wishlists.WishlistByUser(ctx.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgWishlistNotFound)
				return
			}
			log.Errorw("fetching wishlist", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		kept := wishlist.Products[:0]
		for _, p := range wishlist.Products {
			if p.ID != product.ID {
				kept = append(kept, p)
			}
		}
		wishlist.Products = kept

		if err := wishlists.SaveWishlist(ctx.Request.Context(), wishlist); err != nil {
			log.Errorw("saving wishlist", "userId", userID, "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		respondWithWishlist(ctx, wishlists, userID, log)
	}
}

func respondWithWishlist(ctx *gin.Context, wishlists store.WishlistStore, userID uint, log *zap.SugaredLogger) {
	wishlist, err := wishlists.WishlistByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Errorw("reloading wishlist", "userId", userID, "error", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, wishlist)
}
