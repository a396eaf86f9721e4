package wire

import (
	"moview/internal/adaptor"
	"moview/internal/data/repository"
	"moview/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies/suggestions", movieHandler.GetSuggestions)
	r.Get("/api/movies/search", movieHandler.SearchMovies)
	r.Get("/api/movies/{id}/comments", commentHandler.GetMovieComments)

	// in_watchlist is filled when the caller sends a valid token
	r.With(middleware.OptionalAuth(repo.Session, repo.User, log)).Get("/api/movies/{id}", movieHandler.GetMovieDetail)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/movies/{id}/comments", commentHandler.CreateComment)
		r.Delete("/api/comments/{id}", commentHandler.DeleteComment) // owner only
	})
}
