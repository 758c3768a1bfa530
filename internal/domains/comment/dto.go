package comment

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	ParentID *string `json:"parent_id"`
	Content  string  `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ParentID, is.UUIDv4),
		validation.Field(&r.Content, validation.Required, validation.Length(2, 4000)),
	)
}

func (r CreateCommentRequest) ParsedParentID() (*uuid.UUID, error) {
	if r.ParentID == nil || *r.ParentID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*r.ParentID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ThreadResponse is one node of a post's approved comment thread.
type ThreadResponse struct {
	ID         uuid.UUID         `json:"id"`
	AuthorName string            `json:"author_name"`
	Content    string            `json:"content"`
	CreatedAt  string            `json:"created_at"`
	Children   []*ThreadResponse `json:"children"`
}
