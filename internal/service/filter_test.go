package service

import (
	"slices"
	"sync"
	"testing"

	"github.com/opsfolio/internal/content"
)

func slugs(posts []content.Post) []string {
	out := make([]string, 0, len(posts))
	for _, post := range posts {
		out = append(out, post.Slug)
	}
	return out
}

func TestFilterPosts_NoFiltersReturnsEverything(t *testing.T) {
	posts := content.DefaultPosts()
	got := FilterPosts(posts, "", AllCategories)
	if !slices.Equal(slugs(got), slugs(posts)) {
		t.Fatalf("expected full collection in order, got %v", slugs(got))
	}
}

func TestFilterPosts_ByCategory(t *testing.T) {
	posts := content.DefaultPosts()

	for _, category := range Categories(posts)[1:] {
		t.Run(category, func(t *testing.T) {
			got := FilterPosts(posts, "", category)

			want := 0
			for _, post := range posts {
				if post.Category == category {
					want++
				}
			}
			if len(got) != want {
				t.Fatalf("expected %d posts, got %d", want, len(got))
			}
			for _, post := range got {
				if post.Category != category {
					t.Fatalf("post %q has category %q", post.Slug, post.Category)
				}
			}
		})
	}
}

func TestFilterPosts_CategoryIsCaseSensitive(t *testing.T) {
	if got := FilterPosts(content.DefaultPosts(), "", "devops"); len(got) != 0 {
		t.Fatalf("expected no posts for lower-case category, got %v", slugs(got))
	}
}

func TestFilterPosts_SearchIgnoresCase(t *testing.T) {
	posts := content.DefaultPosts()
	upper := FilterPosts(posts, "DEVOPS", AllCategories)
	lower := FilterPosts(posts, "devops", AllCategories)

	if len(upper) == 0 {
		t.Fatalf("expected matches for devops")
	}
	if !slices.Equal(slugs(upper), slugs(lower)) {
		t.Fatalf("expected identical results, got %v and %v", slugs(upper), slugs(lower))
	}
}

func TestFilterPosts_SearchFields(t *testing.T) {
	posts := []content.Post{
		{Slug: "title", Title: "Kubernetes tips", Category: "Ops"},
		{Slug: "excerpt", Title: "Other", Excerpt: "running kubernetes at home", Category: "Ops"},
		{Slug: "category", Title: "Third", Category: "Kubernetes"},
		{Slug: "content-only", Title: "Fourth", Content: "kubernetes", Category: "Ops"},
	}

	got := FilterPosts(posts, "KUBERNETES", AllCategories)
	want := []string{"title", "excerpt", "category"}
	if !slices.Equal(slugs(got), want) {
		t.Fatalf("expected %v, got %v", want, slugs(got))
	}
}

func TestFilterPosts_CombinesCategoryAndSearch(t *testing.T) {
	posts := content.DefaultPosts()

	got := FilterPosts(posts, "aws", "DevOps")
	if !slices.Equal(slugs(got), []string{"terraform-aws-infrastructure"}) {
		t.Fatalf("unexpected result %v", slugs(got))
	}

	none := FilterPosts(posts, "docker", "SRE")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", none)
	}
}

func TestFilterPosts_BlankQueryMatchesAll(t *testing.T) {
	posts := content.DefaultPosts()
	if got := FilterPosts(posts, "   ", AllCategories); len(got) != len(posts) {
		t.Fatalf("expected whitespace query to be ignored, got %d posts", len(got))
	}
}

func TestFilterPosts_DoesNotModifyInput(t *testing.T) {
	posts := content.DefaultPosts()
	before := slugs(posts)
	FilterPosts(posts, "aws", AllCategories)
	if !slices.Equal(slugs(posts), before) {
		t.Fatalf("expected input to be untouched, got %v", slugs(posts))
	}
}

func TestFilterPosts_ConcurrentCallers(t *testing.T) {
	posts := content.DefaultPosts()
	want := slugs(FilterPosts(posts, "Monitoring", AllCategories))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := slugs(FilterPosts(posts, "Monitoring", AllCategories))
			if !slices.Equal(got, want) {
				t.Errorf("expected %v, got %v", want, got)
			}
		}()
	}
	wg.Wait()
}

func TestCategories(t *testing.T) {
	got := Categories(content.DefaultPosts())
	want := []string{"All", "DevOps", "SRE", "Cloud"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if got := Categories(nil); !slices.Equal(got, []string{"All"}) {
		t.Fatalf("expected only the sentinel, got %v", got)
	}
}

func TestFilterState(t *testing.T) {
	state := DefaultFilterState()
	if state.IsActive() {
		t.Fatalf("expected default state to be inactive")
	}

	normalized := FilterState{Sort: "bogus"}.Normalize()
	if normalized.Category != AllCategories || normalized.Sort != SortNone {
		t.Fatalf("unexpected normalized state %#v", normalized)
	}

	active := []FilterState{
		{Query: "k8s", Category: AllCategories, Sort: SortDate},
		{Category: "SRE", Sort: SortDate},
		{Category: AllCategories, Sort: SortViews},
	}
	for _, s := range active {
		if !s.IsActive() {
			t.Fatalf("expected %#v to be active", s)
		}
	}
}

func TestFilterState_ApplyFiltersThenSorts(t *testing.T) {
	state := FilterState{Category: "DevOps", Sort: SortViews}
	got := state.Apply(content.DefaultPosts())
	want := []string{"gitops-argocd-helm", "terraform-aws-infrastructure", "python-docker-health-monitoring"}
	if !slices.Equal(slugs(got), want) {
		t.Fatalf("expected %v, got %v", want, slugs(got))
	}
}
