package service

import (
	"errors"
	"testing"

	"github.com/opsfolio/internal/content"
)

func newTestRepository(t *testing.T) *PostRepository {
	t.Helper()
	repo, err := NewPostRepository(content.DefaultPosts())
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestPostRepository_GetReturnsEveryPost(t *testing.T) {
	repo := newTestRepository(t)

	for _, post := range repo.All() {
		got, ok := repo.Get(post.Slug)
		if !ok {
			t.Fatalf("expected %q to be found", post.Slug)
		}
		if got != post {
			t.Fatalf("expected %#v, got %#v", post, got)
		}
	}
}

func TestPostRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	if _, ok := repo.Get("does-not-exist"); ok {
		t.Fatalf("expected missing slug to report not found")
	}
	if _, ok := repo.Get("Python-Docker-Health-Monitoring"); ok {
		t.Fatalf("expected lookup to be case-sensitive")
	}
}

func TestPostRepository_AllKeepsOrderAndIsACopy(t *testing.T) {
	repo := newTestRepository(t)
	want := content.DefaultPosts()

	first := repo.All()
	for i := range want {
		if first[i].Slug != want[i].Slug {
			t.Fatalf("position %d: expected %q, got %q", i, want[i].Slug, first[i].Slug)
		}
	}

	first[0].Title = "mutated"
	if repo.All()[0].Title == "mutated" {
		t.Fatalf("expected All to return an independent copy")
	}
}

func TestPostRepository_Empty(t *testing.T) {
	repo, err := NewPostRepository(nil)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	if all := repo.All(); all == nil || len(all) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", all)
	}
	if repo.Len() != 0 {
		t.Fatalf("expected length 0, got %d", repo.Len())
	}
}

func TestPostRepository_RejectsInvalidSlugs(t *testing.T) {
	tests := []struct {
		name  string
		posts []content.Post
		want  error
	}{
		{name: "duplicate", posts: []content.Post{{Slug: "a"}, {Slug: "a"}}, want: ErrDuplicateSlug},
		{name: "empty", posts: []content.Post{{Slug: " ", Title: "No slug"}}, want: ErrEmptySlug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPostRepository(tt.posts); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestPostRepository_Related(t *testing.T) {
	repo := newTestRepository(t)

	related := repo.Related("python-docker-health-monitoring", 2)
	if len(related) != 2 {
		t.Fatalf("expected 2 related posts, got %d", len(related))
	}
	if related[0].Slug != "terraform-aws-infrastructure" || related[1].Slug != "kubernetes-monitoring-prometheus" {
		t.Fatalf("unexpected related posts %q, %q", related[0].Slug, related[1].Slug)
	}

	if got := repo.Related("aws-cost-optimization", 10); len(got) != repo.Len()-1 {
		t.Fatalf("expected every other post, got %d", len(got))
	}
	if got := repo.Related("x", 0); len(got) != 0 {
		t.Fatalf("expected no posts for zero limit")
	}
}
