// Package weberror renders shared error pages for web modules.
package weberror

import (
	"net/http"

	"github.com/textdata/web/internal/web/platform/pagerender"
	"github.com/textdata/web/internal/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the full
// error-page UX instead of a plain text response.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteErrorPage writes a full error page for the given status. Statuses
// outside the error-page range collapse to 500.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	page := pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode),
		StatusCode: statusCode,
		Fragment:   templates.ErrorState(statusCode),
	}
	if err := pagerender.WritePage(w, r, page); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
