package handler

import (
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/markup"
	"github.com/opsfolio/internal/service"
)

const relatedPostLimit = 5

type sortOption struct {
	Key      string
	Label    string
	Selected bool
}

var sortLabels = map[service.SortKey]string{
	service.SortDate:  "Newest",
	service.SortTitle: "Title",
	service.SortViews: "Most viewed",
}

// ShowHome renders the blog list with search, category and sort controls.
func (a *API) ShowHome(c *gin.Context) {
	state := filterStateFromQuery(c)
	all := a.posts.All()
	posts := state.Apply(all)

	options := make([]sortOption, 0, len(service.SortKeys))
	for _, key := range service.SortKeys {
		options = append(options, sortOption{
			Key:      string(key),
			Label:    sortLabels[key],
			Selected: key == state.Sort,
		})
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":            "Blog",
		"posts":            posts,
		"categories":       service.Categories(all),
		"filters":          state,
		"sortOptions":      options,
		"hasActiveFilters": state.IsActive(),
		"queryParams":      buildQueryParams(state),
	})
}

// ShowPostDetail renders one post body through the block renderer.
func (a *API) ShowPostDetail(c *gin.Context) {
	post, ok := a.posts.Get(c.Param("slug"))
	if !ok {
		a.ShowNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "post_detail.html", gin.H{
		"title":   post.Title,
		"post":    post,
		"nodes":   markup.Group(markup.Render(post.Content)),
		"related": a.posts.Related(post.Slug, relatedPostLimit),
	})
}

// ShowPage renders a static markdown page; the slug is fixed per route.
func (a *API) ShowPage(slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := a.pages.GetBySlug(slug)
		if err != nil {
			if errors.Is(err, service.ErrPageNotFound) {
				a.ShowNotFound(c)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		htmlContent, err := renderMarkdown(page.Content)
		if err != nil {
			log.Printf("[pages] render %s failed (request %s): %v", slug, RequestID(c), err)
			htmlContent = template.HTML("<p>This page cannot be displayed right now.</p>")
		}

		a.renderHTML(c, http.StatusOK, "page.html", gin.H{
			"title":   page.Title,
			"page":    page,
			"content": htmlContent,
		})
	}
}

// ShowNotFound renders the shared 404 page.
func (a *API) ShowNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "not_found.html", gin.H{
		"title": "Not found",
	})
}
