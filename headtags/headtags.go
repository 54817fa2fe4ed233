// Package headtags extracts the SEO and social preview tags from a
// rendered HTML document.
package headtags

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Tags is the metadata found in a document head.
type Tags struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Canonical   string            `json:"canonical"`
	OpenGraph   map[string]string `json:"open_graph"`
	Twitter     map[string]string `json:"twitter"`
}

// Image returns og:image, falling back to twitter:image.
func (t Tags) Image() string {
	if v := t.OpenGraph["og:image"]; v != "" {
		return v
	}
	return t.Twitter["twitter:image"]
}

// Parse reads an HTML document and collects its head tags.
func Parse(r io.Reader) (Tags, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Tags{}, fmt.Errorf("parse html: %w", err)
	}
	tags := Tags{
		OpenGraph: make(map[string]string),
		Twitter:   make(map[string]string),
	}

	tags.Title = strings.TrimSpace(doc.Find("head title").First().Text())
	tags.Canonical = attr(doc.Find(`head link[rel="canonical"]`).First(), "href")

	doc.Find("head meta").Each(func(_ int, s *goquery.Selection) {
		content := attr(s, "content")
		if prop := attr(s, "property"); strings.HasPrefix(prop, "og:") {
			tags.OpenGraph[prop] = content
			return
		}
		name := strings.ToLower(attr(s, "name"))
		switch {
		case name == "description":
			tags.Description = content
		case name == "keywords":
			tags.Keywords = splitKeywords(content)
		case strings.HasPrefix(name, "twitter:"):
			tags.Twitter[name] = content
		}
	})
	return tags, nil
}

// ParseBytes is Parse over an in-memory document.
func ParseBytes(b []byte) (Tags, error) {
	return Parse(bytes.NewReader(b))
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func splitKeywords(content string) []string {
	var out []string
	for _, kw := range strings.Split(content, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
