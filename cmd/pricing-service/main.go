package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/luxerent/pricing-service/internal/api"
	"github.com/luxerent/pricing-service/internal/api/middleware"
	"github.com/luxerent/pricing-service/internal/cache"
	"github.com/luxerent/pricing-service/internal/config"
	"github.com/luxerent/pricing-service/internal/logging"
	"github.com/luxerent/pricing-service/pkg/db"
)

func main() {
	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(os.Getenv("PRICING_CONFIG"))
	if err != nil {
		logger.Fatal("config load", zap.Error(err))
	}
	policy, err := cfg.Pricing.Policy()
	if err != nil {
		logger.Fatal("pricing policy", zap.Error(err))
	}

	// DB credentials come from env
	dbCfg := db.LoadPostgresConfig()
	conn, err := db.NewPostgresConnection(dbCfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer conn.Close()

	offerings := cache.NewOfferingCache(cfg.Cache.OfferingTTL.Std())
	handler := api.NewRouter(conn, offerings, policy, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Mount("/", handler)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout.Std(),
		WriteTimeout: cfg.Server.WriteTimeout.Std(),
		IdleTimeout:  cfg.Server.IdleTimeout.Std(),
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.WriteTimeout.Std())
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("HTTP server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting pricing-service", zap.String("addr", cfg.Server.Addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}
