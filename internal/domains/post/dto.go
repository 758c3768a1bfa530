package post

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreatePostRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Summary    string `json:"summary"`
	CategoryID string `json:"category_id"`
	PublishNow bool   `json:"publish_now"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 180)),
		validation.Field(&r.Slug, validation.Length(2, 200)),
		validation.Field(&r.Content, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.Summary, validation.Length(0, 400)),
		validation.Field(&r.CategoryID, validation.Required, is.UUIDv4),
	)
}

type UpdatePostRequest struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Summary    string `json:"summary"`
	CategoryID string `json:"category_id"`
}

func (r UpdatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 180)),
		validation.Field(&r.Slug, validation.Length(2, 200)),
		validation.Field(&r.Content, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.Summary, validation.Length(0, 400)),
		validation.Field(&r.CategoryID, validation.Required, is.UUIDv4),
	)
}

// ListPostsQuery carries the public list filters.
type ListPostsQuery struct {
	CategorySlug string
	Search       string
	Page         int
	PageSize     int
}

func (q *ListPostsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
}

func (q ListPostsQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}
