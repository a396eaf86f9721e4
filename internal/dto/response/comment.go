package response

import (
	"time"

	"moview/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Author    string    `json:"author"`
	MovieID   string    `json:"movie_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func CommentToResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		UserID:    comment.UserID.String(),
		Author:    comment.Author,
		MovieID:   comment.MovieID,
		Comment:   comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
