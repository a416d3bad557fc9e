package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/opsfolio/internal/config"
	"github.com/opsfolio/internal/handler"
	"github.com/opsfolio/internal/router"
	"github.com/opsfolio/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	src, err := service.OpenSource(ctx, service.SourceConfig{
		Kind:         cfg.PostSource,
		DatabasePath: cfg.DatabasePath,
		ContentDir:   cfg.ContentDir,
		Seed:         cfg.SeedDatabase,
	})
	if err != nil {
		log.Fatalf("failed to open content source: %v", err)
	}

	posts, pages, err := service.Load(ctx, src)
	if err != nil {
		log.Fatalf("failed to load content: %v", err)
	}

	api := handler.NewAPI(posts, pages, handler.Site{
		Name:    cfg.SiteName,
		BaseURL: cfg.SiteBaseURL,
	})

	r := router.SetupRouter(api)
	log.Printf("[server] listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
