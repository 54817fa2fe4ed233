package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tedstech/chronicles"
	"github.com/tedstech/chronicles/headtags"
	"github.com/tedstech/chronicles/sitemeta"
	"github.com/tedstech/chronicles/views"
)

func loadMeta() (sitemeta.Metadata, error) {
	return chronicles.LoadMeta(
		chronicles.EnvOr("SITE_META_FILE", ""),
		chronicles.EnvOr("SITE_URL", ""),
	)
}

func runServe() error {
	meta, err := loadMeta()
	if err != nil {
		return err
	}
	app := chronicles.New(chronicles.SiteConfig{
		Meta: meta,
		Addr: chronicles.EnvOr("SITE_ADDR", ":3000"),
	}, chronicles.WithStaticDir(chronicles.EnvOr("SITE_STATIC_DIR", "public")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

func runHead(w io.Writer) error {
	meta, err := loadMeta()
	if err != nil {
		return err
	}
	if err := views.Head(meta, views.PageMeta{Path: "/"}).Render(context.Background(), w); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func runMeta(w io.Writer) error {
	meta, err := loadMeta()
	if err != nil {
		return err
	}
	return writeJSON(w, meta)
}

// runInspect reads an HTML document from a local file or an http(s) URL and
// prints the head tags it carries.
func runInspect(w io.Writer, target string) error {
	var r io.ReadCloser
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Get(target)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", target, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return fmt.Errorf("fetch %s: unexpected status %s", target, resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(target)
		if err != nil {
			return err
		}
		r = f
	}
	defer r.Close()

	tags, err := headtags.Parse(r)
	if err != nil {
		return err
	}
	return writeJSON(w, tags)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
