// Package chronicles serves Ted's Tech Chronicles with Go, Echo, and templ.
//
// A single frozen sitemeta.Metadata value is built at startup and handed to
// every handler and template, which turn it into the <head> SEO and social
// preview tags of each page.
package chronicles

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
)

// App is the site application. It wires together the metadata, handlers,
// middleware, and preview image.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo

	preview      *previewImage
	customRoutes []func(*App)
	staticDir    string
	setupOnce    sync.Once
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	a.preview = newPreviewImage(a.previewSourcePath())
	return a
}

// Handler returns the fully configured HTTP handler.
func (a *App) Handler() http.Handler {
	a.setup()
	return a.Echo
}

// Start validates the site metadata, sets up routes, and starts the server.
func (a *App) Start() error {
	if err := a.Config.Meta.Validate(); err != nil {
		return fmt.Errorf("chronicles: invalid site metadata: %w", err)
	}
	a.setup()
	a.Echo.Logger.Infof("serving %s on %s", a.Config.Meta.BaseURL(), a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setup() {
	a.setupOnce.Do(func() {
		a.setupMiddleware()
		a.setupRoutes()
		for _, fn := range a.customRoutes {
			fn(a)
		}
	})
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/meta.json", a.handleMeta)
	e.GET(a.Config.Meta.PreviewImagePath(), a.handlePreviewImage)
	e.GET("/", a.handleHome)
}

// previewSourcePath maps the preview image URL path into the static dir.
func (a *App) previewSourcePath() string {
	rel := strings.TrimPrefix(a.Config.Meta.PreviewImagePath(), "/")
	return filepath.Join(a.staticDir, filepath.FromSlash(rel))
}
