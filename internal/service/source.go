package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/opsfolio/internal/content"
	"github.com/opsfolio/internal/db"
	"gorm.io/gorm"
)

var ErrUnknownSource = errors.New("unknown content source")

// Source kinds accepted by OpenSource.
const (
	SourceBuiltin = "builtin"
	SourceSQLite  = "sqlite"
	SourceDir     = "dir"
)

// ContentSource loads the post collection and static pages. Sources are
// read once at startup; the loaded collection never changes afterwards.
type ContentSource interface {
	Name() string
	LoadPosts(ctx context.Context) ([]content.Post, error)
	LoadPages(ctx context.Context) ([]content.Page, error)
}

// SourceConfig selects and parameterises a ContentSource.
type SourceConfig struct {
	Kind         string
	DatabasePath string
	ContentDir   string
	// Seed fills an empty sqlite database with the built-in content.
	Seed bool
}

// OpenSource builds the configured source.
func OpenSource(ctx context.Context, cfg SourceConfig) (ContentSource, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", SourceBuiltin:
		return StaticSource{}, nil
	case SourceSQLite:
		gdb, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if cfg.Seed {
			if err := seedIfEmpty(ctx, gdb); err != nil {
				return nil, err
			}
		}
		return NewDBSource(gdb), nil
	case SourceDir:
		if strings.TrimSpace(cfg.ContentDir) == "" {
			return nil, errors.New("content directory is required for the dir source")
		}
		return NewDirSource(cfg.ContentDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
	}
}

func seedIfEmpty(ctx context.Context, gdb *gorm.DB) error {
	var count int64
	if err := gdb.WithContext(ctx).Model(&db.Post{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := db.SeedPosts(ctx, gdb, content.DefaultPosts()); err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	if err := db.SeedPages(ctx, gdb, content.DefaultPages()); err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}
	log.Printf("[content] seeded empty database with built-in posts and pages")
	return nil
}

// Load reads a source into a repository and page service.
func Load(ctx context.Context, src ContentSource) (*PostRepository, *PageService, error) {
	posts, err := src.LoadPosts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load posts from %s: %w", src.Name(), err)
	}
	repo, err := NewPostRepository(posts)
	if err != nil {
		return nil, nil, fmt.Errorf("index posts from %s: %w", src.Name(), err)
	}

	pages, err := src.LoadPages(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load pages from %s: %w", src.Name(), err)
	}
	if len(pages) == 0 {
		pages = content.DefaultPages()
	}

	log.Printf("[content] loaded %d posts and %d pages from %s", repo.Len(), len(pages), src.Name())
	return repo, NewPageService(pages), nil
}

// StaticSource serves the built-in literal collection.
type StaticSource struct{}

func (StaticSource) Name() string { return SourceBuiltin }

func (StaticSource) LoadPosts(context.Context) ([]content.Post, error) {
	return content.DefaultPosts(), nil
}

func (StaticSource) LoadPages(context.Context) ([]content.Page, error) {
	return content.DefaultPages(), nil
}

// DBSource reads posts and pages from sqlite.
type DBSource struct {
	db *gorm.DB
}

func NewDBSource(gdb *gorm.DB) *DBSource {
	return &DBSource{db: gdb}
}

func (s *DBSource) Name() string { return SourceSQLite }

func (s *DBSource) LoadPosts(ctx context.Context) ([]content.Post, error) {
	return db.ListPosts(ctx, s.db)
}

func (s *DBSource) LoadPages(ctx context.Context) ([]content.Page, error) {
	return db.ListPages(ctx, s.db)
}

// DB exposes the underlying connection for maintenance commands.
func (s *DBSource) DB() *gorm.DB {
	return s.db
}
