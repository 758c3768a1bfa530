package navigation

import "errors"

var (
	ErrItemNotFound   = errors.New("navigation item not found")
	ErrParentNotFound = errors.New("parent navigation item not found")
	ErrSelfParent     = errors.New("navigation item cannot be its own parent")
	ErrItemInUse      = errors.New("navigation item has children and cannot be deleted")
)
