package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SupremoBarbershop/booking-api/internal/config"
	dbpkg "github.com/SupremoBarbershop/booking-api/internal/db"
	"github.com/SupremoBarbershop/booking-api/internal/middleware"
	"github.com/SupremoBarbershop/booking-api/internal/routes"
)

func main() {

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reaper := routes.RegisterRoutes(r, db, cfg, logger)

	if err := reaper.Start(cfg.ReaperCronSpec); err != nil {
		logger.Fatal("failed to start pending reaper", zap.Error(err))
	}
	defer reaper.Stop()

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
