package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shopnest/api/controllers"
	"github.com/shopnest/api/store"
)

func AuthRoutes(server *gin.Engine, st store.Store, jwtSecret string, log *zap.SugaredLogger) {
	auth := server.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register(st, jwtSecret, log))
		auth.POST("/login", controllers.Login(st, jwtSecret, log))
	}
}
