package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig collects the settings needed to run the site.
type AppConfig struct {
	ListenAddr   string
	Port         string
	GinMode      string
	PostSource   string
	DatabasePath string
	ContentDir   string
	SiteName     string
	SiteBaseURL  string
	SeedDatabase bool
}

// Load reads a .env file when one exists, then the environment, and fills in
// defaults for anything missing. Variables already set in the environment
// win over the .env file.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("[config] ignoring .env: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() AppConfig {
	port := envOr("PORT", "8080")

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr:   listenAddr,
		Port:         port,
		GinMode:      envOr("GIN_MODE", "release"),
		PostSource:   strings.ToLower(envOr("POST_SOURCE", "builtin")),
		DatabasePath: envOr("DATABASE_PATH", "opsfolio.db"),
		ContentDir:   envOr("CONTENT_DIR", "content"),
		SiteName:     envOr("SITE_NAME", "opsfolio"),
		SiteBaseURL:  envOr("SITE_BASE_URL", "http://localhost:"+port),
		SeedDatabase: envBool("SEED_DATABASE", true),
	}
}

func envOr(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %t", key, raw, fallback)
		return fallback
	}
	return value
}
