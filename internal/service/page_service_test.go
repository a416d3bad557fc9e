package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/opsfolio/internal/content"
)

func TestPageService_GetBySlug(t *testing.T) {
	svc := NewPageService(content.DefaultPages())

	page, err := svc.GetBySlug("about")
	if err != nil {
		t.Fatalf("get about: %v", err)
	}
	if page.Title != "About Me" {
		t.Fatalf("unexpected title %q", page.Title)
	}

	if _, err := svc.GetBySlug("missing"); !errors.Is(err, ErrPageNotFound) {
		t.Fatalf("expected ErrPageNotFound, got %v", err)
	}
}

func TestPageService_DerivesSummary(t *testing.T) {
	svc := NewPageService([]content.Page{
		{Slug: "now", Title: "Now", Content: "## Currently\n\nLearning *Rust* and `eBPF` today."},
		{Slug: "", Title: "skipped"},
	})

	page, err := svc.GetBySlug("now")
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	if page.Summary != "Currently Learning Rust and eBPF today." {
		t.Fatalf("unexpected summary %q", page.Summary)
	}
	if len(svc.List()) != 1 {
		t.Fatalf("expected pages without slug to be skipped")
	}
}

func TestSummarizeContentTruncates(t *testing.T) {
	got := summarizeContent(strings.Repeat("a", 200))
	if !strings.HasSuffix(got, "…") || len([]rune(got)) != 121 {
		t.Fatalf("unexpected summary %q", got)
	}
}
