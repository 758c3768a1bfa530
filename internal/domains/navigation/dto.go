package navigation

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

type UpsertNavigationItemRequest struct {
	Label        string  `json:"label"`
	Href         string  `json:"href"`
	DisplayOrder int     `json:"display_order"`
	ParentID     *string `json:"parent_id"`
}

func (r UpsertNavigationItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Label, validation.Required, validation.Length(1, 160)),
		validation.Field(&r.Href, validation.Required, validation.Length(1, 512)),
		validation.Field(&r.DisplayOrder, validation.Min(0)),
		validation.Field(&r.ParentID, is.UUIDv4),
	)
}

func (r UpsertNavigationItemRequest) ParsedParentID() (*uuid.UUID, error) {
	if r.ParentID == nil || *r.ParentID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*r.ParentID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// MenuResponse is one node of the public navigation tree.
type MenuResponse struct {
	ID           uuid.UUID       `json:"id"`
	Label        string          `json:"label"`
	Href         string          `json:"href"`
	DisplayOrder int             `json:"display_order"`
	Children     []*MenuResponse `json:"children"`
}
