package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/controllers"
	"github.com/shopnest/api/middlewares"
	"github.com/shopnest/api/store"
)

func WishlistRoutes(server *gin.Engine, st store.Store, jwtSecret string, log *zap.SugaredLogger) {
	wishlist := server.Group("/api/wishlist")

	wishlist.POST("", controllers.CreateWishlist(st, log))

	protected := wishlist.Group("")
	protected.Use(middlewares.RequireAuth(jwtSecret))
	{
		protected.GET("", controllers.GetWishlist(st, log))
		protected.POST("/add", controllers.AddToWishlist(st, st, log))
		protected.DELETE("/:productId", controllers.RemoveFromWishlist(st, st, log))
	}
}
