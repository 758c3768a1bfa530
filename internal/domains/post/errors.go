package post

import "errors"

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrDuplicateSlug    = errors.New("post slug already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInactive = errors.New("category is not active")
)
