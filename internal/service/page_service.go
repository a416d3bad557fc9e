package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/opsfolio/internal/content"
)

var ErrPageNotFound = errors.New("page not found")

// PageService provides access to static pages such as About.
type PageService struct {
	pages map[string]content.Page
	order []string
}

// NewPageService indexes pages by slug. Later duplicates replace earlier
// ones; missing summaries are derived from the content.
func NewPageService(pages []content.Page) *PageService {
	s := &PageService{pages: make(map[string]content.Page, len(pages))}
	for _, page := range pages {
		slug := strings.TrimSpace(page.Slug)
		if slug == "" {
			continue
		}
		page.Slug = slug
		if strings.TrimSpace(page.Summary) == "" {
			page.Summary = summarizeContent(page.Content)
		}
		if _, exists := s.pages[slug]; !exists {
			s.order = append(s.order, slug)
		}
		s.pages[slug] = page
	}
	return s
}

// GetBySlug fetches a page for a given slug.
func (s *PageService) GetBySlug(slug string) (*content.Page, error) {
	page, ok := s.pages[slug]
	if !ok {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// List returns pages in first-seen order.
func (s *PageService) List() []content.Page {
	out := make([]content.Page, 0, len(s.order))
	for _, slug := range s.order {
		out = append(out, s.pages[slug])
	}
	return out
}

func summarizeContent(markdown string) string {
	replacer := strings.NewReplacer(
		"#", " ",
		"*", " ",
		"`", " ",
		"_", " ",
		">", " ",
		"[", " ",
		"]", " ",
		"(", " ",
		")", " ",
		"|", " ",
	)
	plain := strings.Join(strings.Fields(replacer.Replace(markdown)), " ")
	if plain == "" {
		return ""
	}

	const limit = 120
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}

	runes := []rune(plain)
	return string(runes[:limit]) + "…"
}
