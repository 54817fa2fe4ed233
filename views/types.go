package views

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
// Empty fields fall back to the site-wide metadata.
type PageMeta struct {
	Title       string // page name, suffixed with the site title
	Description string
	Path        string // site-relative path; canonical + og:url
	OGType      string // "website" or "article"
	Image       string // absolute image URL
}
