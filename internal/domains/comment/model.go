package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reader response on a post, written by a registered
// user. Comments are created unapproved and only show publicly once a
// moderator approves them. They thread through ParentID.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	PostID     uuid.UUID  `json:"post_id"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	AuthorID   uuid.UUID  `json:"author_id"`
	Content    string     `json:"content"`
	IsApproved bool       `json:"is_approved"`
	IsActive   bool       `json:"is_active"`
	IsDeleted  bool       `json:"is_deleted"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Populated by read queries joining users/posts; never written.
	AuthorName string `json:"author_name,omitempty"`
	PostTitle  string `json:"post_title,omitempty"`
}

func NewComment(postID uuid.UUID, parentID *uuid.UUID, authorID uuid.UUID, content string) *Comment {
	now := time.Now().UTC()
	return &Comment{
		ID:         uuid.New(),
		PostID:     postID,
		ParentID:   parentID,
		AuthorID:   authorID,
		Content:    content,
		IsApproved: false,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (c *Comment) Touch() {
	c.UpdatedAt = time.Now().UTC()
}

// Approve is idempotent; UpdatedAt changes only on an actual transition.
func (c *Comment) Approve() {
	if c.IsApproved {
		return
	}
	c.IsApproved = true
	c.Touch()
}

func (c *Comment) Reject() {
	if !c.IsApproved {
		return
	}
	c.IsApproved = false
	c.Touch()
}

func (c *Comment) Activate() {
	if c.IsActive {
		return
	}
	c.IsActive = true
	c.Touch()
}

func (c *Comment) Deactivate() {
	if !c.IsActive {
		return
	}
	c.IsActive = false
	c.Touch()
}

// Delete soft-deletes; deleting a deleted comment is a no-op.
func (c *Comment) Delete() {
	if c.IsDeleted {
		return
	}
	c.IsDeleted = true
	c.Touch()
}

// ========================================
// TREE NODE ADAPTER
// ========================================

// Comments sort by creation time within a thread, oldest first, so
// TreeOrder exposes the creation timestamp.
func (c *Comment) TreeID() uuid.UUID { return c.ID }
func (c *Comment) TreeParentID() *uuid.UUID { return c.ParentID }
func (c *Comment) TreeLabel() string { return c.ID.String() }
func (c *Comment) TreeOrder() int { return int(c.CreatedAt.Unix()) }
