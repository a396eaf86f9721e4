package entity

// Movie is one row of a metadata search result. Values are never persisted.
type Movie struct {
	Title      string
	Year       string
	ImdbID     string
	Type       string
	Poster     string
	ImdbRating *string
}

// MovieDetail is the full metadata record for one IMDb id.
type MovieDetail struct {
	ImdbID     string
	Title      string
	Year       string
	Genre      string
	Director   string
	Plot       string
	Poster     string
	ImdbRating string
}
