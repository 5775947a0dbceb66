package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/controllers"
	"github.com/shopnest/api/middlewares"
	"github.com/shopnest/api/store"
)

func CartRoutes(server *gin.Engine, st store.Store, jwtSecret string, log *zap.SugaredLogger) {
	cart := server.Group("/api/cart")

	// Creation stays open: registration provisions carts for fresh user ids.
	cart.POST("", controllers.CreateCart(st, log))

	protected := cart.Group("")
	protected.Use(middlewares.RequireAuth(jwtSecret))
	{
		protected.GET("", controllers.GetCart(st, log))
		protected.POST("/add", controllers.AddToCart(st, st, log))
		protected.DELETE("/:productId", controllers.RemoveFromCart(st, st, log))
		protected.PUT("/:productId", controllers.UpdateCartItemQuantity(st, st, log))
	}
}
