package request

type SearchMoviesRequest struct {
	Query string `json:"q" validate:"required,min=1,max=100"`
}
