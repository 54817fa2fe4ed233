// Package sitemeta holds the site-wide metadata that the <head> template
// turns into SEO and social preview tags.
//
// The authored values live in constants. A Metadata value is built once at
// startup and passed to every renderer that needs it; it cannot be changed
// after construction.
package sitemeta

import (
	"fmt"
	"net/url"
	"strings"
)

// Authored site values.
const (
	BaseURL          = "https://teds-tech-chronicles.netlify.app/"
	Title            = "Ted's Tech Chronicles"
	Description      = "A blog about my journey through the world of web development."
	PreviewImagePath = "/images/site-preview.png"
)

var keywords = [...]string{
	"Svelte",
	"SvelteKit",
	"Blog",
	"Static Site",
	"Web Development",
	"Ted",
	"Tech",
	"Chronicles",
}

// Keywords returns the authored SEO keywords in relevance order.
// Each call returns a new slice.
func Keywords() []string {
	out := make([]string, len(keywords))
	copy(out, keywords[:])
	return out
}

// Metadata is a frozen set of site metadata values.
type Metadata struct {
	baseURL          string
	title            string
	description      string
	keywords         []string
	previewImagePath string
}

// Option customizes a Metadata built with New.
type Option func(*Metadata)

// WithTitle overrides the site title.
func WithTitle(title string) Option {
	return func(m *Metadata) { m.title = title }
}

// WithDescription overrides the site description.
func WithDescription(desc string) Option {
	return func(m *Metadata) { m.description = desc }
}

// WithKeywords overrides the keyword list. The slice is copied.
func WithKeywords(kw ...string) Option {
	return func(m *Metadata) {
		m.keywords = append([]string(nil), kw...)
	}
}

// WithPreviewImagePath overrides the preview image path relative to the base URL.
// The path is stored with a single leading slash.
func WithPreviewImagePath(p string) Option {
	if p = strings.TrimLeft(p, "/"); p != "" {
		p = "/" + p
	}
	return func(m *Metadata) { m.previewImagePath = p }
}

// Default returns the metadata built from the authored constants.
func Default() Metadata {
	return Metadata{
		baseURL:          BaseURL,
		title:            Title,
		description:      Description,
		keywords:         Keywords(),
		previewImagePath: PreviewImagePath,
	}
}

// New builds metadata for the given deployment origin. Fields not set by
// opts keep the authored values. It fails only when baseURL is not an
// absolute http(s) URL.
func New(baseURL string, opts ...Option) (Metadata, error) {
	if err := checkBaseURL(baseURL); err != nil {
		return Metadata{}, err
	}
	m := Default()
	m.baseURL = baseURL
	for _, opt := range opts {
		opt(&m)
	}
	return m, nil
}

func (m Metadata) BaseURL() string          { return m.baseURL }
func (m Metadata) Title() string            { return m.title }
func (m Metadata) Description() string      { return m.description }
func (m Metadata) PreviewImagePath() string { return m.previewImagePath }

// Keywords returns a copy of the keyword list.
func (m Metadata) Keywords() []string {
	return append([]string(nil), m.keywords...)
}

// KeywordsContent returns the keywords formatted for a meta keywords tag.
func (m Metadata) KeywordsContent() string {
	return strings.Join(m.keywords, ", ")
}

// PreviewImageURL returns the absolute URL of the social preview image.
func (m Metadata) PreviewImageURL() string {
	return JoinURL(m.baseURL, m.previewImagePath)
}

// URL returns the absolute URL for a site-relative path.
func (m Metadata) URL(p string) string {
	return JoinURL(m.baseURL, p)
}

// JoinURL appends p to base with exactly one slash between them.
// Trailing slashes on base are dropped, so "https://example.com/" and
// "https://example.com" produce the same result.
func JoinURL(base, p string) string {
	base = strings.TrimRight(base, "/")
	if p == "" {
		return base + "/"
	}
	return base + "/" + strings.TrimLeft(p, "/")
}

func checkBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBaseURL, err)
	}
	if !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	// Paths are appended to the base, so it must end at the path.
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" || u.User != nil {
		return fmt.Errorf("%w: %q must not carry userinfo, query or fragment", ErrInvalidBaseURL, raw)
	}
	return nil
}
