package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/gamefeel/parameter"
)

// RouterConfig holds router dependencies
type RouterConfig struct {
	Source  SnapshotSource
	Metrics *Metrics
	Hub     *Hub
	Logger  *zap.Logger

	// Limiter caps request rate across all clients; nil uses the default rate
	Limiter *rate.Limiter
}

// NewRouter builds the debug HTTP routes; it starts no goroutines
func NewRouter(cfg RouterConfig) *chi.Mux {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Limit(parameter.DebugRequestRate), parameter.DebugRequestBurst)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(rateLimit(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cfg.Source.Snapshot()); err != nil {
			logger.Warn("state encode failed", zap.Error(err))
		}
	})
	if cfg.Metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	if cfg.Hub != nil {
		r.Handle("/ws", cfg.Hub)
	}
	return r
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("took", time.Since(start)),
			)
		})
	}
}

// Server runs the debug endpoints in the background
type Server struct {
	http   *http.Server
	hub    *Hub
	logger *zap.Logger
	cancel context.CancelFunc
	addr   net.Addr
}

// Start listens on addr and serves until Shutdown
func Start(addr string, cfg RouterConfig) (*Server, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("telemetry")
	cfg.Logger = logger

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("debug listen %s: %w", addr, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		http: &http.Server{
			Handler:           NewRouter(cfg),
			ReadHeaderTimeout: 5 * time.Second,
		},
		hub:    cfg.Hub,
		logger: logger,
		cancel: cancel,
		addr:   ln.Addr(),
	}

	if s.hub != nil {
		go s.hub.Run(ctx)
	}
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("debug server stopped", zap.Error(err))
		}
	}()

	logger.Info("debug server listening", zap.String("addr", s.addr.String()))
	return s, nil
}

// Addr returns the bound listener address
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Shutdown stops the hub and drains in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("debug shutdown: %w", err)
	}
	return nil
}
