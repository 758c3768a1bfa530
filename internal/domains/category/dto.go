package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
	ParentID     string `json:"parent_id"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 160)),
		validation.Field(&r.Slug, validation.Length(2, 180)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.DisplayOrder, validation.Min(0)),
		validation.Field(&r.ParentID, is.UUIDv4),
	)
}

type UpdateCategoryRequest struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 160)),
		validation.Field(&r.Slug, validation.Length(2, 180)),
		validation.Field(&r.Description, validation.Length(0, 1000)),
		validation.Field(&r.DisplayOrder, validation.Min(0)),
	)
}

type MoveCategoryRequest struct {
	ParentID *string `json:"parent_id"`
}

func (r MoveCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ParentID, is.UUIDv4),
	)
}

// ParsedParentID returns the target parent as a uuid, or nil for root.
func (r MoveCategoryRequest) ParsedParentID() (*uuid.UUID, error) {
	if r.ParentID == nil || *r.ParentID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*r.ParentID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ========================================
// RESPONSE DTOs
// ========================================

// TreeResponse is one node of the public category tree.
type TreeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	DisplayOrder int             `json:"display_order"`
	Children     []*TreeResponse `json:"children"`
}
