package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/godswill-dev/guardian-be/internal/config"
	"github.com/godswill-dev/guardian-be/internal/logger"
	"github.com/godswill-dev/guardian-be/internal/metrics"
	"github.com/godswill-dev/guardian-be/internal/server"
	"github.com/godswill-dev/guardian-be/internal/stats"
	"github.com/godswill-dev/guardian-be/internal/storage/memory"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	log := logger.New(cfg.Environment)

	store := memory.NewStore()
	registry := stats.NewRegistry()
	promReg := prometheus.NewRegistry()
	collector := metrics.NewCollector(promReg)

	srv := server.New(cfg, log, store, registry, collector, promReg)

	go func() {
		log.Infof("guardian backend listening on %s", cfg.HTTPAddress())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Errorf("graceful shutdown error: %v", err)
	}
}
