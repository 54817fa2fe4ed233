package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/tedstech/chronicles/sitemeta"
)

// Home renders the landing page.
func Home(meta sitemeta.Metadata) templ.Component {
	return page(meta, PageMeta{Path: "/"}, func(buf *bytes.Buffer) {
		buf.WriteString(`<header><h1>` + templ.EscapeString(meta.Title()) + `</h1></header>`)
		buf.WriteString(`<main><p>` + templ.EscapeString(meta.Description()) + `</p>`)
		buf.WriteString(`<ul class="keywords">`)
		for _, kw := range meta.Keywords() {
			buf.WriteString(`<li>` + templ.EscapeString(kw) + `</li>`)
		}
		buf.WriteString(`</ul></main>`)
	})
}

// NotFound renders the 404 page.
func NotFound(meta sitemeta.Metadata) templ.Component {
	return page(meta, PageMeta{Title: "Not Found"}, func(buf *bytes.Buffer) {
		buf.WriteString(`<main><h1>Not Found</h1><p>That page does not exist.</p><a href="/">Back home</a></main>`)
	})
}

// ServerError renders the 500 page.
func ServerError(meta sitemeta.Metadata) templ.Component {
	return page(meta, PageMeta{Title: "Server Error"}, func(buf *bytes.Buffer) {
		buf.WriteString(`<main><h1>Something went wrong</h1><p>Please try again later.</p><a href="/">Back home</a></main>`)
	})
}

func page(meta sitemeta.Metadata, pm PageMeta, body func(*bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!doctype html><html lang="en">`)
		renderHead(&buf, meta, resolve(meta, pm))
		buf.WriteString(`<body>`)
		body(&buf)
		buf.WriteString(`</body></html>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
