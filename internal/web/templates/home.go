package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/textdata/web/internal/platform/branding"
	"github.com/textdata/web/internal/web/routepath"
)

// HomeTitle is the landing page heading and browser title.
const HomeTitle = "Home"

// HomePage renders the landing page fragment.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="home-hero"><h1>`)
		hw.text(branding.AppName)
		hw.raw(`</h1><p class="home-tagline">`)
		hw.text(branding.Tagline)
		hw.raw(`</p><p><a class="home-release-log-link" href="`)
		hw.raw(routepath.ReleaseLog)
		hw.raw(`">See what changed recently</a></p></section>`)
		return hw.err
	})
}
