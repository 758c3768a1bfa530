package post

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Post is an article. Posts are soft-deleted: IsDeleted hides them from
// every public read, and the slug's uniqueness only applies among
// non-deleted posts.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary"`
	Status      Status     `json:"status"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CategoryID  uuid.UUID  `json:"category_id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	IsDeleted   bool       `json:"is_deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Populated by read queries joining categories; never written.
	CategoryName string `json:"category_name,omitempty"`
	CategorySlug string `json:"category_slug,omitempty"`
}

func NewPost(title, slug, content, summary string, categoryID, authorID uuid.UUID) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:         uuid.New(),
		Title:      title,
		Slug:       slug,
		Content:    content,
		Summary:    summary,
		Status:     StatusDraft,
		CategoryID: categoryID,
		AuthorID:   authorID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (p *Post) Touch() {
	p.UpdatedAt = time.Now().UTC()
}

func (p *Post) Update(title, slug, content, summary string, categoryID uuid.UUID) {
	p.Title = title
	p.Slug = slug
	p.Content = content
	p.Summary = summary
	p.CategoryID = categoryID
	p.Touch()
}

// Publish transitions the post to published. Publishing an already
// published post is a no-op: the original PublishedAt stands.
func (p *Post) Publish() {
	if p.Status == StatusPublished {
		return
	}
	now := time.Now().UTC()
	p.Status = StatusPublished
	p.PublishedAt = &now
	p.Touch()
}

// Unpublish returns the post to draft. PublishedAt is cleared so a
// later Publish stamps a fresh time.
func (p *Post) Unpublish() {
	if p.Status == StatusDraft {
		return
	}
	p.Status = StatusDraft
	p.PublishedAt = nil
	p.Touch()
}

// Delete soft-deletes; deleting a deleted post is a no-op.
func (p *Post) Delete() {
	if p.IsDeleted {
		return
	}
	p.IsDeleted = true
	p.Touch()
}

func (p *Post) Restore() {
	if !p.IsDeleted {
		return
	}
	p.IsDeleted = false
	p.Touch()
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished && !p.IsDeleted
}
