package db

import (
	"github.com/opsfolio/internal/content"
	"gorm.io/gorm"
)

// Post is the stored form of a blog post. Position keeps the declaration
// order of the collection it was seeded from.
type Post struct {
	gorm.Model
	Slug     string `gorm:"uniqueIndex;not null"`
	Position int    `gorm:"index"`
	Title    string `gorm:"not null"`
	Excerpt  string
	Content  string `gorm:"type:text"`
	Category string `gorm:"index"`
	Date     string
	ReadTime string
	Views    string
	Author   string
}

// PostFromContent converts a post record into its stored form.
func PostFromContent(p content.Post, position int) Post {
	return Post{
		Slug:     p.Slug,
		Position: position,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Category: p.Category,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		Views:    p.Views,
		Author:   p.Author,
	}
}

// ToContent drops storage bookkeeping and returns the plain record.
func (p Post) ToContent() content.Post {
	return content.Post{
		Slug:     p.Slug,
		Title:    p.Title,
		Excerpt:  p.Excerpt,
		Content:  p.Content,
		Category: p.Category,
		Date:     p.Date,
		ReadTime: p.ReadTime,
		Views:    p.Views,
		Author:   p.Author,
	}
}
