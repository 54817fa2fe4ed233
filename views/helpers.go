package views

import (
	"encoding/json"

	"github.com/tedstech/chronicles/sitemeta"
)

// PageTitle suffixes a page name with the site title.
func PageTitle(meta sitemeta.Metadata, page string) string {
	if page == "" || page == meta.Title() {
		return meta.Title()
	}
	return page + " | " + meta.Title()
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block for the site.
func WebsiteJsonLD(meta sitemeta.Metadata) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        meta.Title(),
		"url":         meta.URL(""),
		"description": meta.Description(),
		"keywords":    meta.KeywordsContent(),
		"image":       meta.PreviewImageURL(),
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// resolve fills empty PageMeta fields from the site metadata.
func resolve(meta sitemeta.Metadata, page PageMeta) PageMeta {
	out := page
	out.Title = PageTitle(meta, page.Title)
	if out.Description == "" {
		out.Description = meta.Description()
	}
	if out.OGType == "" {
		out.OGType = "website"
	}
	if out.Image == "" {
		out.Image = meta.PreviewImageURL()
	}
	out.Path = meta.URL(page.Path)
	return out
}
