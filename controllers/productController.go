package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/models"
	"github.com/shopnest/api/store"
)

// ImportCatalog pulls the full product list from the upstream API and
// replaces the whole catalog with it. Administrative operation; re-importing
// replaces rather than appends.
func ImportCatalog(products store.ProductStore, client *catalog.Client, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fetched, err := client.FetchProducts(ctx.Request.Context())
		if err != nil {
			log.Errorw("fetching upstream catalog", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		imported := make([]models.Product, 0, len(fetched))
		for _, p := range fetched {
			imported = append(imported, models.Product{
				ExternalID:  p.ID,
				Title:       p.Title,
				Price:       p.Price,
				Description: p.Description,
				Category:    p.Category,
				Image:       p.Image,
				Rating:      datatypes.JSON(p.Rating),
			})
		}

		if err := products.ReplaceCatalog(ctx.Request.Context(), imported); err != nil {
			log.Errorw("replacing catalog", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		log.Infow("catalog imported", "count", len(imported))
		sendJSONResponse(ctx, http.StatusOK, imported)
	}
}

func GetProducts(products store.ProductStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		all, err := products.Products(ctx.Request.Context())
		if err != nil {
			log.Errorw("fetching products", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, all)
	}
}

// GetProduct looks a product up by its upstream catalog id, not the store's
// own key. A non-numeric id matches nothing and reads as not found.
func GetProduct(products store.ProductStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		externalID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
			return
		}

		product, err := products.ProductByExternalID(ctx.Request.Context(), uint(externalID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
				return
			}
			log.Errorw("fetching product", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, product)
	}
}

// GetProductsByCategory is an exact-match filter; no matches is an empty
// list, not an error.
func GetProductsByCategory(products store.ProductStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		matched, err := products.ProductsByCategory(ctx.Request.Context(), ctx.Param("category"))
		if err != nil {
			log.Errorw("fetching products by category", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, matched)
	}
}

func GetCategories(products store.ProductStore, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		categories, err := products.Categories(ctx.Request.Context())
		if err != nil {
			log.Errorw("fetching categories", "error", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgServerError)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, categories)
	}
}
