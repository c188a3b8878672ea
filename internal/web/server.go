// Copyright (c) 2026 Marquee. All rights reserved.

/*
Package web assembles the HTTP surface: the router, the middleware chain,
and the page handlers for venues, artists, and shows.
*/
package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/marquee-live/marquee/internal/core/artist"
	"github.com/marquee-live/marquee/internal/core/show"
	"github.com/marquee-live/marquee/internal/core/venue"
	"github.com/marquee-live/marquee/internal/platform/constants"
	"github.com/marquee-live/marquee/internal/platform/middleware"
	"github.com/marquee-live/marquee/internal/web/flash"
	"github.com/marquee-live/marquee/internal/web/render"
)

// Handlers groups the page handlers mounted on the router.
type Handlers struct {
	Venues  *venue.Handler
	Artists *artist.Handler
	Shows   *show.Handler
}

// Server is the Marquee HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds the router with the full middleware chain and returns a server
// ready to listen on the given port.
func New(ctx context.Context, port string, logger *slog.Logger, renderer *render.Renderer, flashes *flash.Store, handlers Handlers) *Server {
	router := chi.NewRouter()

	router.Use(chimw.CleanPath)
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	router.Use(middleware.RateLimit(ctx))
	router.Use(middleware.PanicRecovery(logger, renderer.ServerErrorPage))

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		renderer.HTML(writer, request, http.StatusOK, "home", render.Page{
			Title:   "Marquee",
			Flashes: flashes.Consume(request),
		})
	})

	router.Route("/venues", handlers.Venues.RegisterRoutes)
	router.Route("/artists", handlers.Artists.RegisterRoutes)
	router.Route("/shows", handlers.Shows.RegisterRoutes)

	router.NotFound(renderer.NotFoundPage)

	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
		logger: logger,
	}
}

// ListenAndServe starts serving and blocks until the listener closes.
func (server *Server) ListenAndServe() error {
	server.logger.Info("server_listening", slog.String("addr", server.httpServer.Addr))
	return server.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until the context deadline.
func (server *Server) Shutdown(ctx context.Context) error {
	return server.httpServer.Shutdown(ctx)
}
