// Package httpapi serves the listings API as JSON over HTTP for browser
// clients. It shares the services with the gRPC transport.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	address  string
	logger   logging.Logger
	services services.Set
	router   *chi.Mux
	timeout  time.Duration
}

func NewServer(address string, l logging.Logger, set services.Set, requestTimeout time.Duration) *Server {
	s := &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		services: set,
		router:   chi.NewRouter(),
		timeout:  requestTimeout,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.RequestID)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
	if s.timeout > 0 {
		s.router.Use(middleware.Timeout(s.timeout))
	}
}

func (s *Server) setupRoutes() {
	r := s.router

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/listings", s.handleBrowse)
		r.Get("/upgrades/options", s.handleUpgradeOptions)
		r.Get("/listings/{id}/upgrades", s.handleActiveUpgrades)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/me/listings", s.handleMyListings)
			r.Get("/me/purchases", s.handlePurchaseHistory)
			r.Post("/listings", s.handleCreateListing)
			r.Post("/listings/{id}/available-now", s.handleToggleAvailableNow)
			r.Post("/listings/{id}/upgrades", s.handlePurchaseUpgrade)
		})
	})
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve handles requests on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "graceful shutdown failed", "error", err)
			_ = srv.Close()
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
