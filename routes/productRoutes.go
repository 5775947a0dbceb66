package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/controllers"
	"github.com/shopnest/api/store"
)

func ProductRoutes(server *gin.Engine, st store.Store, client *catalog.Client, log *zap.SugaredLogger) {
	products := server.Group("/api/products")
	{
		products.GET("/fetch-products", controllers.ImportCatalog(st, client, log))
		products.GET("", controllers.GetProducts(st, log))
		products.GET("/categories", controllers.GetCategories(st, log))
		products.GET("/category/:category", controllers.GetProductsByCategory(st, log))
		products.GET("/:id", controllers.GetProduct(st, log))
	}
}
