package request

import (
	"net/url"

	"moview/pkg/utils"
)

const (
	DefaultCommentsPerPage = 20
	MaxCommentsPerPage     = 50
)

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=50"`
}

// PageFromQuery reads page and per_page, falling back to defaults on
// missing or malformed values.
func PageFromQuery(query url.Values) *PaginatedRequest {
	return &PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), DefaultCommentsPerPage),
	}
}

func (p PaginatedRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit()
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return DefaultCommentsPerPage
	}
	return min(p.PerPage, MaxCommentsPerPage)
}
