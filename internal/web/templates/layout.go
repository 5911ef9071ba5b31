// Package templates defines the templ components for the web service:
// the shared site chrome and the per-page fragments mounted inside it.
package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/textdata/web/internal/platform/branding"
	"github.com/textdata/web/internal/web/routepath"
)

// ComposePageTitle appends the brand suffix to a page title unless the
// title already carries it.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	if strings.HasSuffix(title, " | "+branding.AppName) {
		return title
	}
	if strings.HasSuffix(title, " - "+branding.AppName) {
		title = strings.TrimSuffix(title, " - "+branding.AppName)
		title = strings.TrimSpace(title)
	}
	return title + " | " + branding.AppName
}

// SiteHeader renders the top-of-page navigation chrome.
func SiteHeader() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<header class="site-header"><nav class="site-nav"><a class="site-brand" href="`)
		hw.raw(routepath.Root)
		hw.raw(`">`)
		hw.text(branding.AppName)
		hw.raw(`</a><ul class="site-nav-links"><li><a href="`)
		hw.raw(routepath.Root)
		hw.raw(`">Home</a></li><li><a href="`)
		hw.raw(routepath.ReleaseLog)
		hw.raw(`">Release Log</a></li></ul></nav></header>`)
		return hw.err
	})
}

// SiteFooter renders the bottom-of-page chrome.
func SiteFooter() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<footer class="site-footer"><p>`)
		hw.text(branding.AppName)
		hw.raw(` &mdash; `)
		hw.text(branding.Tagline)
		hw.raw(`</p></footer>`)
		return hw.err
	})
}

// SiteLayout renders the full document shell: head, header chrome, the
// children fragment inside a padded main region, then footer chrome.
func SiteLayout(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		hw := newHTMLWriter(w)
		hw.raw(`<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		hw.text(ComposePageTitle(title))
		hw.raw(`</title><link rel="stylesheet" href="`)
		hw.raw(routepath.StaticPrefix)
		hw.raw(`site.css"></head><body>`)
		if hw.err != nil {
			return hw.err
		}
		if err := SiteHeader().Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`<main class="page-container">`)
		if hw.err != nil {
			return hw.err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</main>`)
		if hw.err != nil {
			return hw.err
		}
		if err := SiteFooter().Render(ctx, w); err != nil {
			return err
		}
		hw.raw(`</body></html>`)
		return hw.err
	})
}
