package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/service"
)

// Site carries the site-wide values every page template receives.
type Site struct {
	Name    string
	BaseURL string
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	posts *service.PostRepository
	pages *service.PageService
	site  Site
}

// NewAPI constructs a handler set over a loaded post collection.
func NewAPI(posts *service.PostRepository, pages *service.PageService, site Site) *API {
	site.Name = strings.TrimSpace(site.Name)
	if site.Name == "" {
		site.Name = "opsfolio"
	}
	site.BaseURL = strings.TrimRight(strings.TrimSpace(site.BaseURL), "/")
	return &API{posts: posts, pages: pages, site: site}
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["site"]; !exists {
		payload["site"] = gin.H{
			"name":    a.site.Name,
			"baseUrl": a.site.BaseURL,
		}
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}
	if _, exists := payload["path"]; !exists {
		payload["path"] = c.Request.URL.Path
	}

	c.HTML(status, template, payload)
}
