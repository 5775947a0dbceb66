package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shopnest/api/catalog"
	"github.com/shopnest/api/config"
	"github.com/shopnest/api/initializers"
	"github.com/shopnest/api/logger"
	"github.com/shopnest/api/routes"
	"github.com/shopnest/api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logg.Sync()

	if cfg.JWTSecret == "" {
		logg.Fatal("JWT_SECRET must be set")
	}

	var st store.Store
	if cfg.DatabaseDSN != "" {
		db, err := initializers.ConnectToDB(cfg.DatabaseDSN)
		if err != nil {
			logg.Fatalw("connecting to database", "error", err)
		}
		if err := initializers.SyncDatabase(db); err != nil {
			logg.Fatalw("syncing database schema", "error", err)
		}
		st = store.NewGormStore(db)
		logg.Info("using mysql store")
	} else {
		st = store.NewMemStore()
		logg.Warn("DATABASE_DSN not set, using in-memory store")
	}

	client := catalog.NewClient(cfg.CatalogURL)

	server := gin.New()
	server.Use(logger.RequestLogger(logg), gin.Recovery())
	server.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, st, cfg.JWTSecret, logg)
	routes.ProductRoutes(server, st, client, logg)
	routes.CartRoutes(server, st, cfg.JWTSecret, logg)
	routes.WishlistRoutes(server, st, cfg.JWTSecret, logg)

	logg.Infow("server starting", "port", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		logg.Fatalw("server stopped", "error", err)
	}
}
