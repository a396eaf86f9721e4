package entity

import (
	"time"

	"github.com/google/uuid"
)

// WatchlistMovie is keyed by (UserID, MovieID); display fields are copied
// from the metadata API when the entry is added.
type WatchlistMovie struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieID   string    `db:"movie_id"`
	Title     string    `db:"title"`
	PosterURL string    `db:"poster_url"`
	Year      string    `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}
