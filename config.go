package chronicles

import (
	"os"

	"github.com/tedstech/chronicles/sitemeta"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Meta sitemeta.Metadata // Frozen site metadata (default sitemeta.Default())
	Addr string            // Listen address (default ":3000")
}

func (c *SiteConfig) setDefaults() {
	if c.Meta.BaseURL() == "" {
		c.Meta = sitemeta.Default()
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadMeta builds the site metadata from an optional YAML override file
// and an optional base URL override, in that order.
func LoadMeta(file, baseURL string) (sitemeta.Metadata, error) {
	meta := sitemeta.Default()
	if file != "" {
		m, err := sitemeta.LoadFile(file)
		if err != nil {
			return sitemeta.Metadata{}, err
		}
		meta = m
	}
	if baseURL != "" {
		m, err := sitemeta.New(baseURL,
			sitemeta.WithTitle(meta.Title()),
			sitemeta.WithDescription(meta.Description()),
			sitemeta.WithKeywords(meta.Keywords()...),
			sitemeta.WithPreviewImagePath(meta.PreviewImagePath()),
		)
		if err != nil {
			return sitemeta.Metadata{}, err
		}
		meta = m
	}
	return meta, nil
}
