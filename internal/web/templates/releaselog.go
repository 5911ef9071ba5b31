package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/textdata/web/internal/releaselog"
)

// ReleaseLogTitle is the page heading and browser title for the release log.
const ReleaseLogTitle = "Release Log"

// ReleaseLogPage renders the release history as a fold over the authored
// entries: one dated section per entry, one labeled list per non-empty
// category. Entries render in slice order; categories with no items render
// nothing at all.
func ReleaseLogPage(entries []releaselog.Entry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="release-log"><h1 class="release-log-title">`)
		hw.text(ReleaseLogTitle)
		hw.raw(`</h1>`)
		for _, entry := range entries {
			writeReleaseEntry(hw, entry)
		}
		hw.raw(`</section>`)
		return hw.err
	})
}

func writeReleaseEntry(hw *htmlWriter, entry releaselog.Entry) {
	hw.raw(`<section class="release-entry"><h2 class="release-entry-date">`)
	hw.text(entry.Date)
	hw.raw(`</h2>`)
	for _, category := range entry.Categories {
		writeReleaseCategory(hw, category)
	}
	hw.raw(`</section>`)
}

func writeReleaseCategory(hw *htmlWriter, category releaselog.Category) {
	if len(category.Items) == 0 {
		return
	}
	hw.raw(`<h3 class="release-category-label">`)
	hw.text(string(category.Label))
	hw.raw(`</h3><ul class="release-category-items">`)
	for _, item := range category.Items {
		hw.raw(`<li>`)
		hw.text(item)
		hw.raw(`</li>`)
	}
	hw.raw(`</ul>`)
}
