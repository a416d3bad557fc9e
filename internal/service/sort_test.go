package service

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/opsfolio/internal/content"
)

func TestSortPosts_BuiltInCollection(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []string
	}{
		{key: SortDate, want: []string{
			"python-docker-health-monitoring",
			"terraform-aws-infrastructure",
			"kubernetes-monitoring-prometheus",
			"gitops-argocd-helm",
			"aws-cost-optimization",
		}},
		{key: SortTitle, want: []string{
			"aws-cost-optimization",
			"terraform-aws-infrastructure",
			"gitops-argocd-helm",
			"kubernetes-monitoring-prometheus",
			"python-docker-health-monitoring",
		}},
		{key: SortViews, want: []string{
			"aws-cost-optimization",
			"gitops-argocd-helm",
			"terraform-aws-infrastructure",
			"kubernetes-monitoring-prometheus",
			"python-docker-health-monitoring",
		}},
		{key: SortNone, want: slugs(content.DefaultPosts())},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			posts := content.DefaultPosts()
			SortPosts(posts, tt.key)
			if got := slugs(posts); !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSortPosts_DateUnparseableLastAndStable(t *testing.T) {
	posts := []content.Post{
		{Slug: "unknown-1", Date: "someday"},
		{Slug: "old", Date: "Jan 5, 2023"},
		{Slug: "unknown-2", Date: ""},
		{Slug: "iso", Date: "2024-03-01"},
		{Slug: "same-day", Date: "March 1, 2024"},
	}
	SortPosts(posts, SortDate)

	want := []string{"iso", "same-day", "old", "unknown-1", "unknown-2"}
	if got := slugs(posts); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestSortPosts_TitleIgnoresCase(t *testing.T) {
	posts := []content.Post{
		{Slug: "b", Title: "beta"},
		{Slug: "a", Title: "Alpha"},
		{Slug: "c", Title: "Charlie"},
	}
	SortPosts(posts, SortTitle)
	if got := slugs(posts); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected order %v", got)
	}
}

func TestParseViewCount(t *testing.T) {
	tests := []struct {
		raw  string
		want uint64
	}{
		{raw: "45 views", want: 45},
		{raw: "1,204 views", want: 1204},
		{raw: "n/a", want: 0},
		{raw: "", want: 0},
		{raw: "99999999999999999999999", want: math.MaxUint64},
	}
	for _, tt := range tests {
		if got := ParseViewCount(tt.raw); got != tt.want {
			t.Fatalf("ParseViewCount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestParsePostDate(t *testing.T) {
	got, ok := ParsePostDate("Dec 20, 2024")
	if !ok {
		t.Fatalf("expected date to parse")
	}
	if want := time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if _, ok := ParsePostDate("last week"); ok {
		t.Fatalf("expected free text to be rejected")
	}
}

func TestParseSortKey(t *testing.T) {
	tests := map[string]SortKey{
		"date":   SortDate,
		" TITLE": SortTitle,
		"views":  SortViews,
		"":       SortNone,
		"random": SortNone,
	}
	for raw, want := range tests {
		if got := ParseSortKey(raw); got != want {
			t.Fatalf("ParseSortKey(%q) = %q, want %q", raw, got, want)
		}
	}
}
