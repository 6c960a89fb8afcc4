package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/meepleshelf/meeple-api/internal/api"
	apiMiddleware "github.com/meepleshelf/meeple-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Create API handlers using the application's services
	boardgameHandler := api.NewBoardgameHandler(app.boardgameService)
	favoriteHandler := api.NewFavoriteHandler(app.favoriteService, app.boardgameService)

	// Register routes
	r.Route("/boardgame", func(r chi.Router) {
		r.Get("/", boardgameHandler.ListBoardgames)
		r.Post("/", boardgameHandler.CreateBoardgame)
		r.Get("/{id}", boardgameHandler.GetBoardgame)
		r.Put("/{id}", boardgameHandler.UpdateBoardgame)
		r.Delete("/{id}", boardgameHandler.DeleteBoardgame)
	})

	r.Route("/favorites", func(r chi.Router) {
		r.Get("/", favoriteHandler.ListFavorites)
		r.Post("/", favoriteHandler.CreateFavorite)
		r.Delete("/{id}", favoriteHandler.DeleteFavorite)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
