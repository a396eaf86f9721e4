package usecase

import (
	"moview/internal/data/repository"
	"moview/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Movie      MovieService
	Suggestion SuggestionService
	Comment    CommentService
	Watchlist  WatchlistService
}

func NewService(repo *repository.Repository, provider MovieProvider, config *utils.Config, log *zap.Logger) *Service {
	comment := NewCommentService(repo, log)
	watchlist := NewWatchlistService(repo, provider, log)

	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo, watchlist.Count, comment.CountByUser, log),
		Movie:      NewMovieService(repo, provider, log),
		Suggestion: NewSuggestionService(provider, config.Suggestion, log),
		Comment:    comment,
		Watchlist:  watchlist,
	}
}
