package entity

import "github.com/google/uuid"

type Comment struct {
	BaseSimple
	UserID  uuid.UUID `db:"user_id"`
	Author  string    `db:"author"`
	MovieID string    `db:"movie_id"` // IMDb id
	Text    string    `db:"comment"`
}
