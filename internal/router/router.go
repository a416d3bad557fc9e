package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/handler"
	"github.com/opsfolio/web"
)

// SetupRouter configures the Gin engine and routes.
func SetupRouter(api *handler.API) *gin.Engine {
	r := gin.Default()
	r.Use(handler.RequestIDMiddleware())

	tmpl := template.Must(template.New("").ParseFS(web.Templates, "template/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	r.GET("/", api.ShowHome)
	r.GET("/blog/:slug", api.ShowPostDetail)
	r.GET("/about", api.ShowPage("about"))
	r.GET("/contact", api.ShowPage("contact"))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/posts", api.ListPosts)
		apiGroup.GET("/posts/:slug", api.GetPost)
		apiGroup.GET("/posts/:slug/blocks", api.GetPostBlocks)
		apiGroup.GET("/categories", api.ListCategories)
	}

	r.NoRoute(api.ShowNotFound)

	return r
}
