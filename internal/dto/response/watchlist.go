package response

import (
	"time"

	"moview/internal/data/entity"
)

type WatchlistMovieResponse struct {
	MovieID   string    `json:"movie_id"`
	Title     string    `json:"title"`
	PosterURL string    `json:"poster_url"`
	Year      string    `json:"year"`
	AddedAt   time.Time `json:"added_at"`
}

type WatchlistStatusResponse struct {
	MovieID     string `json:"movie_id"`
	InWatchlist bool   `json:"in_watchlist"`
}

func WatchlistMovieToResponse(item *entity.WatchlistMovie) WatchlistMovieResponse {
	return WatchlistMovieResponse{
		MovieID:   item.MovieID,
		Title:     item.Title,
		PosterURL: item.PosterURL,
		Year:      item.Year,
		AddedAt:   item.CreatedAt,
	}
}
