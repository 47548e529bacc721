package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/zaferdrn0/Fzy-sub000/internal/config"
	dbpkg "github.com/zaferdrn0/Fzy-sub000/internal/db"
	"github.com/zaferdrn0/Fzy-sub000/internal/logging"
	"github.com/zaferdrn0/Fzy-sub000/internal/middleware"
	"github.com/zaferdrn0/Fzy-sub000/internal/routes"
	"github.com/zaferdrn0/Fzy-sub000/internal/session"
)

func main() {

	cfg := config.Load()

	log, err := logging.New(os.Getenv("APP_DEBUG") != "")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Fatal("invalid REDIS_URL", zap.Error(err))
	}
	rdb := redis.NewClient(redisOpts)

	sessions := session.NewStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
