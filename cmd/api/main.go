package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/barberconnect/barberconnect-api/internal/config"
	dbpkg "github.com/barberconnect/barberconnect-api/internal/db"
	"github.com/barberconnect/barberconnect-api/internal/media"
	"github.com/barberconnect/barberconnect-api/internal/middleware"
	"github.com/barberconnect/barberconnect-api/internal/realtime"
	"github.com/barberconnect/barberconnect-api/internal/routes"
)

func main() {

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := realtime.NewRedisClient(cfg)
	notifier := realtime.NewNotifier(rdb)

	storage := media.NewStorage(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route_not_found"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier, storage)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
