package response

import "moview/internal/data/entity"

type MovieResponse struct {
	ImdbID     string  `json:"imdb_id"`
	Title      string  `json:"title"`
	Year       string  `json:"year"`
	Type       string  `json:"type"`
	PosterURL  string  `json:"poster_url"`
	ImdbRating *string `json:"imdb_rating,omitempty"`
}

type MovieDetailResponse struct {
	ImdbID       string `json:"imdb_id"`
	Title        string `json:"title"`
	Year         string `json:"year"`
	Genre        string `json:"genre"`
	Director     string `json:"director"`
	Plot         string `json:"plot"`
	PosterURL    string `json:"poster_url"`
	ImdbRating   string `json:"imdb_rating"`
	CommentCount int64  `json:"comment_count"`
	// nil for anonymous callers
	InWatchlist *bool `json:"in_watchlist,omitempty"`
}

func MovieToResponse(movie entity.Movie) MovieResponse {
	return MovieResponse{
		ImdbID:     movie.ImdbID,
		Title:      movie.Title,
		Year:       movie.Year,
		Type:       movie.Type,
		PosterURL:  movie.Poster,
		ImdbRating: movie.ImdbRating,
	}
}

func MoviesToResponse(movies []entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}

func MovieDetailToResponse(detail *entity.MovieDetail) MovieDetailResponse {
	return MovieDetailResponse{
		ImdbID:     detail.ImdbID,
		Title:      detail.Title,
		Year:       detail.Year,
		Genre:      detail.Genre,
		Director:   detail.Director,
		Plot:       detail.Plot,
		PosterURL:  detail.Poster,
		ImdbRating: detail.ImdbRating,
	}
}
