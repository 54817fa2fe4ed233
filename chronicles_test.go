package chronicles

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tedstech/chronicles/headtags"
	"github.com/tedstech/chronicles/sitemeta"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	opts = append([]Option{WithStaticDir(t.TempDir())}, opts...)
	return New(SiteConfig{}, opts...)
}

func get(t *testing.T, a *App, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewSetsDefaults(t *testing.T) {
	a := New(SiteConfig{})
	if a.Config.Addr != ":3000" {
		t.Errorf("Addr = %q", a.Config.Addr)
	}
	if !reflect.DeepEqual(a.Config.Meta, sitemeta.Default()) {
		t.Errorf("Meta = %#v, want sitemeta.Default()", a.Config.Meta)
	}
	if a.staticDir != "public" {
		t.Errorf("staticDir = %q", a.staticDir)
	}
}

func TestHomeRendersHead(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", cc)
	}

	tags, err := headtags.Parse(rec.Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tags.Title != sitemeta.Title {
		t.Errorf("title = %q", tags.Title)
	}
	if !reflect.DeepEqual(tags.Keywords, sitemeta.Keywords()) {
		t.Errorf("keywords = %v", tags.Keywords)
	}
	if tags.Image() != "https://teds-tech-chronicles.netlify.app/images/site-preview.png" {
		t.Errorf("image = %q", tags.Image())
	}
}

func TestHomeUsesInjectedMetadata(t *testing.T) {
	meta, err := sitemeta.New("https://staging.example.com", sitemeta.WithTitle("Staging"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := New(SiteConfig{Meta: meta}, WithStaticDir(t.TempDir()))
	tags, err := headtags.Parse(get(t, a, "/").Body)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tags.Title != "Staging" {
		t.Errorf("title = %q", tags.Title)
	}
	if tags.Canonical != "https://staging.example.com/" {
		t.Errorf("canonical = %q", tags.Canonical)
	}
}

func TestRobots(t *testing.T) {
	rec := get(t, newTestApp(t), "/robots.txt")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	want := "Sitemap: https://teds-tech-chronicles.netlify.app/sitemap.xml"
	if !strings.Contains(rec.Body.String(), want) {
		t.Fatalf("robots.txt = %q, want %q", rec.Body.String(), want)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestSitemap(t *testing.T) {
	rec := get(t, newTestApp(t), "/sitemap.xml")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<loc>https://teds-tech-chronicles.netlify.app/</loc>") {
		t.Fatalf("sitemap missing home url: %s", body)
	}
}

func TestMetaJSON(t *testing.T) {
	rec := get(t, newTestApp(t), "/meta.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		BaseURL         string   `json:"base_url"`
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		Keywords        []string `json:"keywords"`
		PreviewImageURL string   `json:"preview_image_url"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.BaseURL != sitemeta.BaseURL || got.Title != sitemeta.Title || got.Description != sitemeta.Description {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if len(got.Keywords) != 8 {
		t.Errorf("keywords = %v", got.Keywords)
	}
	if got.PreviewImageURL != "https://teds-tech-chronicles.netlify.app/images/site-preview.png" {
		t.Errorf("preview_image_url = %q", got.PreviewImageURL)
	}
}

func TestNotFoundRendersPage(t *testing.T) {
	rec := get(t, newTestApp(t), "/missing/")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Not Found | Ted&#39;s Tech Chronicles") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	rec := get(t, newTestApp(t), "/about")
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/about/" {
		t.Fatalf("Location = %q", loc)
	}
}

func TestPreviewImage(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "images", "site-preview.png"), 2400, 1000)

	a := New(SiteConfig{}, WithStaticDir(dir))
	rec := get(t, a, "/images/site-preview.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "image/png" {
		t.Errorf("content type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=604800" {
		t.Errorf("Cache-Control = %q", cc)
	}
	cfg, err := png.DecodeConfig(rec.Body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != previewWidth || cfg.Height != previewHeight {
		t.Fatalf("size = %dx%d, want %dx%d", cfg.Width, cfg.Height, previewWidth, previewHeight)
	}
}

func TestPreviewImageRelativeOverride(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "og.png"), 1200, 630)
	meta, err := sitemeta.New("https://example.com", sitemeta.WithPreviewImagePath("og.png"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	rec := get(t, New(SiteConfig{Meta: meta}, WithStaticDir(dir)), "/og.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != "public, max-age=604800" {
		t.Errorf("Cache-Control = %q", cc)
	}
}

func TestWWWHostIsServedDirectly(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = "www.example.com"
	rec := httptest.NewRecorder()
	newTestApp(t).Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, Location = %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestPreviewImageMissing(t *testing.T) {
	rec := get(t, newTestApp(t), "/images/site-preview.png")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCustomRoutes(t *testing.T) {
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/ping/", func(c echo.Context) error {
			return c.String(http.StatusOK, a.Config.Meta.Title())
		})
	}))
	rec := get(t, a, "/ping/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.String() != sitemeta.Title {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		img.Set(x, h/2, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}
