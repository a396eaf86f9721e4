package repository

import (
	"moview/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	OTP       OTPRepository
	Comment   CommentRepository
	Watchlist WatchlistRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		OTP:       NewOTPRepository(db, log),
		Comment:   NewCommentRepository(db, log),
		Watchlist: NewWatchlistRepository(db, log),
	}
}
