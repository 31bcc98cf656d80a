package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-manager/internal/db"
	"github.com/BruksfildServices01/barber-manager/internal/logging"
	"github.com/BruksfildServices01/barber-manager/internal/reconciler"
	"github.com/BruksfildServices01/barber-manager/internal/reminder"
	"github.com/BruksfildServices01/barber-manager/internal/routes"
	"github.com/BruksfildServices01/barber-manager/internal/statscache"
)

func main() {

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	// cache de agregados: redis quando configurado, memória local no resto
	var cache statscache.DayCounts
	if cfg.RedisAddr != "" {
		cache = statscache.NewRedis(redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		}))
	} else {
		cache = statscache.NewMemory()
	}

	reminders := reminder.NewTimerGateway(nil)
	defer reminders.Stop()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	sweep := routes.RegisterRoutes(r, db, cache, reminders)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := reconciler.New(sweep)
	rec.Start(ctx)
	defer rec.Stop()

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
