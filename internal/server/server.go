package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/godswill-dev/guardian-be/internal/auth"
	"github.com/godswill-dev/guardian-be/internal/config"
	"github.com/godswill-dev/guardian-be/internal/http/handlers"
	"github.com/godswill-dev/guardian-be/internal/metrics"
	"github.com/godswill-dev/guardian-be/internal/middleware"
	"github.com/godswill-dev/guardian-be/internal/stats"
	"github.com/godswill-dev/guardian-be/internal/storage/memory"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner   *http.Server
	limiter *middleware.RateLimiter
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, log *logrus.Logger, store *memory.Store, registry *stats.Registry, collector *metrics.Collector, promReg *prometheus.Registry) *Server {
	mux := http.NewServeMux()

	handlers.NewHealthHandler(time.Now()).Register(mux)
	handlers.NewAccountHandler(store, registry, collector, log, cfg.InitBalanceCents).Register(mux)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	handlers.NewUserHandler(store, tokenManager, registry, collector, log).Register(mux)
	handlers.NewStatsHandler(registry).Register(mux)
	mux.Handle("GET /metrics", metrics.Handler(promReg))

	limiter := middleware.NewRateLimiter(cfg.RatePerMinute, cfg.RateBurst)
	handler := middleware.CORS(cfg.CORSOrigins, limiter.Middleware(middleware.Logging(log, mux)))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer, limiter: limiter}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server and stops the rate limiter.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.inner.Shutdown(ctx)
}
