package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/markup"
	"github.com/opsfolio/internal/service"
)

// ListPosts returns the filtered and sorted post list as JSON.
func (a *API) ListPosts(c *gin.Context) {
	state := filterStateFromQuery(c)
	all := a.posts.All()
	posts := state.Apply(all)

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"total":      len(posts),
		"categories": service.Categories(all),
		"filters":    state,
	})
}

// GetPost returns a single post by slug.
func (a *API) GetPost(c *gin.Context) {
	post, ok := a.posts.Get(c.Param("slug"))
	if !ok {
		respondError(c, http.StatusNotFound, service.ErrPostNotFound.Error())
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetPostBlocks returns the display blocks of a post body.
func (a *API) GetPostBlocks(c *gin.Context) {
	post, ok := a.posts.Get(c.Param("slug"))
	if !ok {
		respondError(c, http.StatusNotFound, service.ErrPostNotFound.Error())
		return
	}

	blocks := markup.Collect(post.Content)
	if blocks == nil {
		blocks = []markup.Block{}
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":   post.Slug,
		"blocks": blocks,
	})
}

// ListCategories returns the selectable categories.
func (a *API) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": service.Categories(a.posts.All())})
}
