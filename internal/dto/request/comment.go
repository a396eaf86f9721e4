package request

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,min=1,max=500"`
}
