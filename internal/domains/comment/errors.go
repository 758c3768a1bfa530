package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrParentNotFound  = errors.New("parent comment not found")
	ErrAuthorNotFound  = errors.New("comment author not found")
	ErrParentMismatch  = errors.New("parent comment belongs to a different post")
)
