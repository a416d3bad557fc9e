package service

import (
	"slices"
	"strings"

	"github.com/opsfolio/internal/content"
	"golang.org/x/text/cases"
)

// AllCategories is the category selector value that disables category
// filtering.
const AllCategories = "All"

// FilterState is the per-request view state of the blog list. Each caller
// builds its own; nothing about it is shared or persisted.
type FilterState struct {
	Query    string  `json:"query"`
	Category string  `json:"category"`
	Sort     SortKey `json:"sort"`
}

// DefaultFilterState mirrors a freshly opened blog list.
func DefaultFilterState() FilterState {
	return FilterState{Category: AllCategories, Sort: SortDate}
}

// Normalize fills in the category sentinel and rejects unknown sort keys.
func (s FilterState) Normalize() FilterState {
	if strings.TrimSpace(s.Category) == "" {
		s.Category = AllCategories
	}
	s.Sort = ParseSortKey(string(s.Sort))
	return s
}

// IsActive reports whether the state differs from the default view.
func (s FilterState) IsActive() bool {
	return strings.TrimSpace(s.Query) != "" ||
		s.Category != AllCategories ||
		s.Sort != SortDate
}

// Apply filters posts and then orders the survivors by the sort key.
func (s FilterState) Apply(posts []content.Post) []content.Post {
	state := s.Normalize()
	filtered := FilterPosts(posts, state.Query, state.Category)
	SortPosts(filtered, state.Sort)
	return filtered
}

// FilterPosts keeps posts in the given category (unless it is "All") whose
// title, excerpt or category contains query, ignoring case. A blank query
// matches everything. Input order is preserved and the result is never nil.
func FilterPosts(posts []content.Post, query, category string) []content.Post {
	result := make([]content.Post, 0, len(posts))
	for _, post := range posts {
		if category != AllCategories && post.Category != category {
			continue
		}
		result = append(result, post)
	}

	if strings.TrimSpace(query) == "" {
		return result
	}

	// Casers are stateful; one per call keeps concurrent requests apart.
	fold := cases.Fold()
	needle := fold.String(query)
	return slices.DeleteFunc(result, func(post content.Post) bool {
		return !strings.Contains(fold.String(post.Title), needle) &&
			!strings.Contains(fold.String(post.Excerpt), needle) &&
			!strings.Contains(fold.String(post.Category), needle)
	})
}

// Categories lists "All" followed by each distinct category in order of
// first appearance.
func Categories(posts []content.Post) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, post := range posts {
		if seen[post.Category] {
			continue
		}
		seen[post.Category] = true
		categories = append(categories, post.Category)
	}
	return categories
}
