package request

type WatchlistMovieRequest struct {
	MovieID string `json:"movie_id" validate:"required,imdbid"`
}
