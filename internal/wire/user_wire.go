package wire

import (
	"moview/internal/adaptor"
	"moview/internal/data/repository"
	"moview/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures the profile and watchlist routes of the signed-in user
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	watchlistHandler *adaptor.WatchlistHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/api/user", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)

		r.Get("/watchlist", watchlistHandler.GetWatchlist)
		r.Get("/watchlist/{id}", watchlistHandler.GetStatus)      // GET /api/user/watchlist/{imdb-id}
		r.Post("/watchlist/{id}/toggle", watchlistHandler.Toggle) // add when absent, remove when present
		r.Put("/watchlist/{id}", watchlistHandler.Add)            // idempotent add
		r.Delete("/watchlist/{id}", watchlistHandler.Remove)      // idempotent remove
	})
}
