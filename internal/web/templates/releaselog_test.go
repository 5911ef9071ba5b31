package templates

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/textdata/web/internal/releaselog"
)

func TestReleaseLogPageRendersEntriesInOrder(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, ReleaseLogPage(releaselog.Entries))

	last := -1
	for _, entry := range releaselog.Entries {
		marker := `<h2 class="release-entry-date">` + entry.Date + `</h2>`
		idx := strings.Index(html, marker)
		if idx < 0 {
			t.Fatalf("entry %q not rendered", entry.Date)
		}
		if idx < last {
			t.Fatalf("entry %q rendered out of authored order", entry.Date)
		}
		last = idx
	}
}

func TestReleaseLogPageRendersItemsOnceInOrder(t *testing.T) {
	t.Parallel()

	html := renderComponent(t, ReleaseLogPage(releaselog.Entries))

	for _, entry := range releaselog.Entries {
		last := -1
		for _, category := range entry.Categories {
			for _, item := range category.Items {
				marker := "<li>" + item + "</li>"
				if got := strings.Count(html, marker); got != 1 {
					t.Fatalf("item %q rendered %d times, want 1", item, got)
				}
				idx := strings.Index(html, marker)
				if idx < last {
					t.Fatalf("item %q rendered out of authored order", item)
				}
				last = idx
			}
		}
	}
}

func TestReleaseLogPageOmitsEmptyCategories(t *testing.T) {
	t.Parallel()

	entries := []releaselog.Entry{
		{
			Date: "January 1st, 2024",
			Categories: []releaselog.Category{
				{Label: releaselog.Features, Items: []string{"Shipped a thing"}},
				{Label: releaselog.BugFixes, Items: nil},
			},
		},
	}
	html := renderComponent(t, ReleaseLogPage(entries))

	if !strings.Contains(html, ">Features</h3>") {
		t.Errorf("populated category missing: %s", html)
	}
	if strings.Contains(html, ">Bug Fixes</h3>") {
		t.Errorf("empty category rendered a heading: %s", html)
	}
	if got := strings.Count(html, "<ul"); got != 1 {
		t.Errorf("rendered %d lists, want 1: %s", got, html)
	}
}

func TestReleaseLogPageEscapesUntrustedText(t *testing.T) {
	t.Parallel()

	entries := []releaselog.Entry{
		{
			Date: "January 1st, 2024",
			Categories: []releaselog.Category{
				{Label: releaselog.Features, Items: []string{`Support <script>alert("x")</script> payloads`}},
			},
		},
	}
	html := renderComponent(t, ReleaseLogPage(entries))

	if strings.Contains(html, "<script>") {
		t.Fatalf("item text not escaped: %s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("escaped item text missing: %s", html)
	}
}

func TestReleaseLogPageDeterministic(t *testing.T) {
	t.Parallel()

	first := renderComponent(t, ReleaseLogPage(releaselog.Entries))
	second := renderComponent(t, ReleaseLogPage(releaselog.Entries))
	if first != second {
		t.Fatal("two renders of the same entries differ")
	}
}

func TestReleaseLogPageSnapshot(t *testing.T) {
	html := renderComponent(t, ReleaseLogPage(releaselog.Entries))
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, html)
}
