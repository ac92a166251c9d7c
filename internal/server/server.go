package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/PerkPoints_Go/internal/metrics"
	"github.com/osse101/PerkPoints_Go/internal/session"
)

// Server exposes a running simulation over HTTP
type Server struct {
	httpServer *http.Server
}

// NewRouter builds the debug API routes for sim
func NewRouter(sim *session.Session) http.Handler {
	h := &handlers{sim: sim}
	r := chi.NewRouter()

	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.getState)

		r.Route("/rates", func(r chi.Router) {
			r.Get("/", h.getRates)
			r.Post("/reload", h.reloadRates)
		})

		r.Route("/player", func(r chi.Router) {
			r.Post("/levelup", h.levelUp)
			r.Post("/spend", h.spendPerk)
		})

		r.Route("/game", func(r chi.Router) {
			r.Post("/new", h.newGame)
			r.Post("/save", h.saveGame)
			r.Post("/load", h.loadGame)
			r.Get("/slots", h.listSlots)
		})
	})

	return r
}

// NewServer creates a debug server listening on addr
func NewServer(addr string, sim *session.Session) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(sim),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
