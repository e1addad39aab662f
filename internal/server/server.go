package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skyhold/outfitledger/internal/handler"
	"github.com/skyhold/outfitledger/internal/logger"
	"github.com/skyhold/outfitledger/internal/market"
	"github.com/skyhold/outfitledger/internal/metrics"
)

// Server is the HTTP surface over the market service
type Server struct {
	httpServer    *http.Server
	marketService market.Service
}

// NewServer creates a new Server instance
func NewServer(port int, marketService market.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/holders", func(r chi.Router) {
			r.Post("/", handler.HandleCreateHolder(marketService))
			r.Get("/{holderID}", handler.HandleGetHolder(marketService))
			r.Get("/{holderID}/holdings", handler.HandleGetHoldings(marketService))
		})

		r.Route("/market", func(r chi.Router) {
			r.Post("/quote", handler.HandleQuote(marketService))
			r.Post("/buy", handler.HandleBuy(marketService))
			r.Post("/sell", handler.HandleSell(marketService))
		})

		r.Route("/fleet", func(r chi.Router) {
			r.Post("/give", handler.HandleGive(marketService))
			r.Post("/plunder", handler.HandlePlunder(marketService))
			r.Post("/age", handler.HandleAgeFleet(marketService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		marketService: marketService,
	}
}

// RequestSizeLimitMiddleware rejects request bodies over the given byte limit
func RequestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware assigns each request an ID and logs start and completion
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and scrapes would drown out real traffic.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path)

		next.ServeHTTP(w, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
