// Package releaselog holds the authored release history presented on the
// release log page. The data set is fixed at build time; rendering folds
// over it without sorting or mutation.
package releaselog

// CategoryLabel names a grouping of change items within a release entry.
type CategoryLabel string

// The closed set of category labels used by release entries.
const (
	Features      CategoryLabel = "Features"
	BugFixes      CategoryLabel = "Bug Fixes"
	Miscellaneous CategoryLabel = "Miscellaneous"
)

// Category is a labeled group of change items within a release entry.
type Category struct {
	// Label is the display label for the group.
	Label CategoryLabel
	// Items are free-text change descriptions in authored order.
	Items []string
}

// Entry is one dated release record.
type Entry struct {
	// Date is the human-readable release date label. Dates are unique
	// across Entries and are display strings, never parsed or compared.
	Date string
	// Categories are the labeled change groups in authored order.
	Categories []Category
}

// Entries is the release history, authored newest-first. Authoring order is
// the display order; renderers must not reorder.
var Entries = []Entry{
	{
		Date: "August 9th, 2023",
		Categories: []Category{
			{Label: Features, Items: []string{
				"Submission pages now list connected submissions from your communities",
				"Search results can be opened in a preview pane without leaving the page",
			}},
			{Label: BugFixes, Items: []string{
				"Requesting a search page past the last result no longer returns an error",
				"Extension sessions survive a browser restart",
			}},
		},
	},
	{
		Date: "May 8th, 2023",
		Categories: []Category{
			{Label: Features, Items: []string{
				"Recommendation feed with a \"more like my recent submissions\" mode",
				"Batch submission upload for importing many webpages at once",
			}},
			{Label: Miscellaneous, Items: []string{
				"Faster search over large communities",
			}},
		},
	},
	{
		Date: "April 11th, 2023",
		Categories: []Category{
			{Label: Features, Items: []string{
				"Community core pages: tag a submission with #core to pin it for the whole community",
				"Submitted webpages are scraped and indexed so their full text is searchable",
			}},
			{Label: BugFixes, Items: []string{
				"Clicking a recommendation now records the click before redirecting",
			}},
		},
	},
	{
		Date: "March 7th, 2023",
		Categories: []Category{
			{Label: Features, Items: []string{
				"Feedback form for reporting problems with a submission",
			}},
			{Label: BugFixes, Items: []string{
				"Editing a submission re-indexes it so old text stops matching searches",
				"Removing a submission from its last community no longer hides it from its author",
			}},
		},
	},
	{
		Date: "February 27th, 2023",
		Categories: []Category{
			{Label: BugFixes, Items: []string{
				"Hashtag search no longer mixes in unrelated webpage results",
				"Fixed duplicate results when a webpage was submitted to several communities",
			}},
		},
	},
	{
		Date: "February 5th, 2023",
		Categories: []Category{
			{Label: Miscellaneous, Items: []string{
				"Passwords must be longer than 5 characters",
				"Usernames must be longer than 1 character",
				"Emails must have valid form",
				"Pages start at 1",
			}},
		},
	},
}
