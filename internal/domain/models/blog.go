package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is authored by an admin or employer user. Posts are removed when
// their author is deleted.
type BlogPost struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Body        string    `json:"body"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewBlogPost creates an unpublished post.
func NewBlogPost(authorID uuid.UUID, title, slug, body string) *BlogPost {
	now := time.Now().UTC()
	return &BlogPost{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     title,
		Slug:      slug,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
