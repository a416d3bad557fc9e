package db

import (
	"context"

	"github.com/opsfolio/internal/content"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedPosts upserts posts by slug. Positions follow the slice order so a
// reseed restores the declaration order.
func SeedPosts(ctx context.Context, gdb *gorm.DB, posts []content.Post) error {
	if len(posts) == 0 {
		return nil
	}
	rows := make([]Post, 0, len(posts))
	for i, post := range posts {
		rows = append(rows, PostFromContent(post, i))
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"position", "title", "excerpt", "content", "category",
				"date", "read_time", "views", "author", "updated_at",
			}),
		}).Create(&rows).Error
	})
}

// SeedPages upserts pages by slug.
func SeedPages(ctx context.Context, gdb *gorm.DB, pages []content.Page) error {
	if len(pages) == 0 {
		return nil
	}
	rows := make([]Page, 0, len(pages))
	for _, page := range pages {
		rows = append(rows, PageFromContent(page))
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "summary", "content", "updated_at"}),
		}).Create(&rows).Error
	})
}

// ListPosts returns every stored post in declaration order.
func ListPosts(ctx context.Context, gdb *gorm.DB) ([]content.Post, error) {
	var rows []Post
	if err := gdb.WithContext(ctx).Order("position asc, id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	posts := make([]content.Post, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.ToContent())
	}
	return posts, nil
}

// ListPages returns every stored page ordered by slug.
func ListPages(ctx context.Context, gdb *gorm.DB) ([]content.Page, error) {
	var rows []Page
	if err := gdb.WithContext(ctx).Order("slug asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	pages := make([]content.Page, 0, len(rows))
	for _, row := range rows {
		pages = append(pages, row.ToContent())
	}
	return pages, nil
}
