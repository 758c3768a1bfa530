package category

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateSlug    = errors.New("category slug already exists")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrSelfParent       = errors.New("category cannot be its own parent")
	ErrDescendantParent = errors.New("category cannot be moved under its own descendant")
	ErrCategoryInUse    = errors.New("category has children or posts and cannot be deleted")
)
