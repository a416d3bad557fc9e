package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opsfolio/internal/content"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrDuplicateSlug = errors.New("duplicate post slug")
	ErrEmptySlug     = errors.New("post slug is required")
)

// PostRepository serves a fixed, ordered post collection. It is read-only
// after construction and safe for concurrent use.
type PostRepository struct {
	posts []content.Post
	index map[string]int
}

// NewPostRepository copies posts and indexes them by slug. Slugs must be
// non-empty and unique.
func NewPostRepository(posts []content.Post) (*PostRepository, error) {
	repo := &PostRepository{
		posts: make([]content.Post, len(posts)),
		index: make(map[string]int, len(posts)),
	}
	copy(repo.posts, posts)

	for i, post := range repo.posts {
		if strings.TrimSpace(post.Slug) == "" {
			return nil, fmt.Errorf("post %d (%q): %w", i, post.Title, ErrEmptySlug)
		}
		if _, exists := repo.index[post.Slug]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSlug, post.Slug)
		}
		repo.index[post.Slug] = i
	}
	return repo, nil
}

// All returns the collection in declaration order. Callers own the slice.
func (r *PostRepository) All() []content.Post {
	out := make([]content.Post, len(r.posts))
	copy(out, r.posts)
	return out
}

// Get looks a post up by exact, case-sensitive slug.
func (r *PostRepository) Get(slug string) (content.Post, bool) {
	i, ok := r.index[slug]
	if !ok {
		return content.Post{}, false
	}
	return r.posts[i], true
}

// Len reports the number of posts.
func (r *PostRepository) Len() int {
	return len(r.posts)
}

// Related returns up to limit posts other than slug, in declaration order.
func (r *PostRepository) Related(slug string, limit int) []content.Post {
	if limit <= 0 {
		return []content.Post{}
	}
	out := make([]content.Post, 0, min(limit, len(r.posts)))
	for _, post := range r.posts {
		if post.Slug == slug {
			continue
		}
		out = append(out, post)
		if len(out) == limit {
			break
		}
	}
	return out
}
