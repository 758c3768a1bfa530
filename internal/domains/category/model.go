package category

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the public taxonomy. Categories form a tree
// through ParentID; only active categories appear in public listings.
type Category struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	DisplayOrder int        `json:"display_order"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewRootCategory(name, slug, description string, displayOrder int) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:           uuid.New(),
		Name:         name,
		Slug:         slug,
		Description:  description,
		DisplayOrder: displayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func NewChildCategory(name, slug, description string, displayOrder int, parentID uuid.UUID) *Category {
	c := NewRootCategory(name, slug, description, displayOrder)
	c.ParentID = &parentID
	return c
}

func (c *Category) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

func (c *Category) Update(name, slug, description string, displayOrder int) {
	c.Name = name
	c.Slug = slug
	c.Description = description
	c.DisplayOrder = displayOrder
	c.Touch()
}

// MoveTo reparents the category. A nil target makes it a root.
func (c *Category) MoveTo(parentID *uuid.UUID) error {
	if parentID != nil && *parentID == c.ID {
		return ErrSelfParent
	}
	c.ParentID = parentID
	c.Touch()
	return nil
}

// Activate is idempotent; UpdatedAt changes only on an actual transition.
func (c *Category) Activate() {
	if c.IsActive {
		return
	}
	c.IsActive = true
	c.Touch()
}

func (c *Category) Deactivate() {
	if !c.IsActive {
		return
	}
	c.IsActive = false
	c.Touch()
}

// ========================================
// TREE NODE ADAPTER
// ========================================

func (c *Category) TreeID() uuid.UUID { return c.ID }
func (c *Category) TreeParentID() *uuid.UUID { return c.ParentID }
func (c *Category) TreeLabel() string { return c.Name }
func (c *Category) TreeOrder() int { return c.DisplayOrder }
