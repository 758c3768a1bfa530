package navigation

import (
	"time"

	"github.com/google/uuid"
)

// NavigationItem is one entry of the site menu. Items nest through
// ParentID the same way categories do.
type NavigationItem struct {
	ID           uuid.UUID  `json:"id"`
	Label        string     `json:"label"`
	Href         string     `json:"href"`
	DisplayOrder int        `json:"display_order"`
	ParentID     *uuid.UUID `json:"parent_id,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewNavigationItem(label, href string, displayOrder int, parentID *uuid.UUID) *NavigationItem {
	now := time.Now().UTC()
	return &NavigationItem{
		ID:           uuid.New(),
		Label:        label,
		Href:         href,
		DisplayOrder: displayOrder,
		ParentID:     parentID,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (n *NavigationItem) Touch() {
	n.UpdatedAt = time.Now().UTC()
}

func (n *NavigationItem) Update(label, href string, displayOrder int, parentID *uuid.UUID) error {
	if parentID != nil && *parentID == n.ID {
		return ErrSelfParent
	}
	n.Label = label
	n.Href = href
	n.DisplayOrder = displayOrder
	n.ParentID = parentID
	n.Touch()
	return nil
}

func (n *NavigationItem) Activate() {
	if n.IsActive {
		return
	}
	n.IsActive = true
	n.Touch()
}

func (n *NavigationItem) Deactivate() {
	if !n.IsActive {
		return
	}
	n.IsActive = false
	n.Touch()
}

// ========================================
// TREE NODE ADAPTER
// ========================================

func (n *NavigationItem) TreeID() uuid.UUID { return n.ID }
func (n *NavigationItem) TreeParentID() *uuid.UUID { return n.ParentID }
func (n *NavigationItem) TreeLabel() string { return n.Label }
func (n *NavigationItem) TreeOrder() int { return n.DisplayOrder }
