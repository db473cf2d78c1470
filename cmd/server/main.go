package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vorongor/users-api/internal/config"
	"github.com/Vorongor/users-api/internal/controllers"
	"github.com/Vorongor/users-api/internal/db"
	"github.com/Vorongor/users-api/internal/ratelimit"
	"github.com/Vorongor/users-api/internal/router"
	"github.com/Vorongor/users-api/internal/utils"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET required")
	}
	for _, dir := range []string{cfg.TempDir, cfg.AvatarsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create %s: %v", dir, err)
		}
	}

	dbConn := db.Init(cfg.DatabaseDSN)

	email := utils.NewSMTPClient(cfg.SMTP, cfg.BaseURL)

	limiter := ratelimit.New(cfg.RedisAddr, cfg.RedisPassword, 20, time.Minute)

	secret := []byte(cfg.JWTSecret)
	users := controllers.NewUserController(dbConn, email, secret, cfg.AccessTokenTTL, cfg.TempDir, cfg.AvatarsDir)

	r := gin.Default()
	router.Setup(r, users, dbConn, secret, limiter, cfg.AvatarsDir)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
