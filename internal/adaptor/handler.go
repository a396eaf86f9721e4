package adaptor

import (
	"moview/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Movie     *MovieHandler
	Comment   *CommentHandler
	Watchlist *WatchlistHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Movie:     NewMovieHandler(service.Movie, service.Suggestion, log),
		Comment:   NewCommentHandler(service.Comment, log),
		Watchlist: NewWatchlistHandler(service.Watchlist, log),
	}
}
