package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/tedstech/chronicles/sitemeta"
)

// Head renders the document <head> with SEO, OpenGraph and Twitter card tags.
func Head(meta sitemeta.Metadata, page PageMeta) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		renderHead(&buf, meta, resolve(meta, page))
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func renderHead(buf *bytes.Buffer, meta sitemeta.Metadata, p PageMeta) {
	buf.WriteString("<head>")
	buf.WriteString(`<meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString("<title>" + templ.EscapeString(p.Title) + "</title>")

	metaName(buf, "description", p.Description)
	metaName(buf, "keywords", meta.KeywordsContent())
	buf.WriteString(`<link rel="canonical" href="` + templ.EscapeString(p.Path) + `">`)

	metaProperty(buf, "og:site_name", meta.Title())
	metaProperty(buf, "og:title", p.Title)
	metaProperty(buf, "og:description", p.Description)
	metaProperty(buf, "og:type", p.OGType)
	metaProperty(buf, "og:url", p.Path)
	metaProperty(buf, "og:image", p.Image)

	metaName(buf, "twitter:card", "summary_large_image")
	metaName(buf, "twitter:title", p.Title)
	metaName(buf, "twitter:description", p.Description)
	metaName(buf, "twitter:image", p.Image)

	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	buf.WriteString(`<script type="application/ld+json">`)
	buf.WriteString(WebsiteJsonLD(meta))
	buf.WriteString("</script>")
	buf.WriteString("</head>")
}

func metaName(buf *bytes.Buffer, name, content string) {
	buf.WriteString(`<meta name="` + name + `" content="` + templ.EscapeString(content) + `">`)
}

func metaProperty(buf *bytes.Buffer, property, content string) {
	buf.WriteString(`<meta property="` + property + `" content="` + templ.EscapeString(content) + `">`)
}
