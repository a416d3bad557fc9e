package db

import (
	"github.com/opsfolio/internal/content"
	"gorm.io/gorm"
)

// Page represents a standalone content page such as About.
type Page struct {
	gorm.Model
	Slug    string `gorm:"uniqueIndex;not null"`
	Title   string `gorm:"not null"`
	Summary string
	Content string `gorm:"type:text"`
}

func PageFromContent(p content.Page) Page {
	return Page{Slug: p.Slug, Title: p.Title, Summary: p.Summary, Content: p.Content}
}

func (p Page) ToContent() content.Page {
	return content.Page{Slug: p.Slug, Title: p.Title, Summary: p.Summary, Content: p.Content}
}
