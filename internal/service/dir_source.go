package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/opsfolio/internal/content"
	"github.com/opsfolio/internal/markup"
	"gopkg.in/yaml.v2"
)

const pagesSubdir = "pages"

// DirSource reads markdown files with YAML front matter. Posts live
// directly in the directory and load in file name order; pages live in the
// pages/ subdirectory.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Name() string { return SourceDir + ":" + s.dir }

func (s *DirSource) LoadPosts(ctx context.Context) ([]content.Post, error) {
	files, err := markdownFiles(s.dir)
	if err != nil {
		return nil, err
	}

	posts := make([]content.Post, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		post, err := readPostFile(path)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *DirSource) LoadPages(ctx context.Context) ([]content.Page, error) {
	dir := filepath.Join(s.dir, pagesSubdir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	files, err := markdownFiles(dir)
	if err != nil {
		return nil, err
	}

	pages := make([]content.Page, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var meta struct {
			Slug    string `yaml:"slug"`
			Title   string `yaml:"title"`
			Summary string `yaml:"summary"`
		}
		body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		page := content.Page{
			Slug:    meta.Slug,
			Title:   meta.Title,
			Summary: meta.Summary,
			Content: string(body),
		}
		if page.Slug == "" {
			page.Slug = fileStem(path)
		}
		if page.Title == "" {
			page.Title = firstHeading(page.Content)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func markdownFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func readPostFile(path string) (content.Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return content.Post{}, err
	}

	var post content.Post
	body, err := frontmatter.Parse(bytes.NewReader(raw), &post)
	if err != nil {
		return content.Post{}, fmt.Errorf("parse %s: %w", path, err)
	}
	post.Content = string(body)

	if post.Slug == "" {
		post.Slug = fileStem(path)
	}
	if post.Title == "" {
		post.Title = firstHeading(post.Content)
	}
	if post.ReadTime == "" {
		post.ReadTime = EstimateReadTime(post.Content)
	}
	return post, nil
}

// fileStem strips the extension and any "NNN-" ordering prefix.
func fileStem(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.IndexByte(stem, '-'); i > 0 && strings.Trim(stem[:i], "0123456789") == "" {
		stem = stem[i+1:]
	}
	return stem
}

func firstHeading(body string) string {
	for block := range markup.Render(body) {
		if block.Kind == markup.KindHeading && block.Level == 1 {
			return strings.TrimSpace(block.Text)
		}
	}
	return ""
}

const wordsPerMinute = 200

// EstimateReadTime formats a "N min read" label from the word count of body.
func EstimateReadTime(body string) string {
	words := len(strings.Fields(markup.PlainText(body)))
	if words == 0 {
		return ""
	}
	minutes := words / wordsPerMinute
	if words%wordsPerMinute != 0 {
		minutes++
	}
	return fmt.Sprintf("%d min read", minutes)
}

// WritePostFiles exports posts as front-matter markdown files whose names
// preserve the collection order.
func WritePostFiles(dir string, posts []content.Post) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(posts))
	for i, post := range posts {
		meta, err := yaml.Marshal(post)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", post.Slug, err)
		}

		var buf bytes.Buffer
		buf.WriteString("---\n")
		buf.Write(meta)
		buf.WriteString("---\n")
		buf.WriteString(post.Content)

		path := filepath.Join(dir, fmt.Sprintf("%03d-%s.md", i+1, post.Slug))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
