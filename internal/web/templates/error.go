package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// ErrorPageTitle returns the browser page title for error pages.
func ErrorPageTitle(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "Page not found"
	}
	return "Something went wrong"
}

func errorMessage(statusCode int) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return "The page you are looking for does not exist or may have moved."
	}
	return "An unexpected error occurred. Please try again later."
}

// ErrorState renders the in-page error fragment for 404 and 5xx responses.
func ErrorState(statusCode int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<section class="error-state"><h1>`)
		hw.text(ErrorPageTitle(statusCode))
		hw.raw(`</h1><p>`)
		hw.text(errorMessage(statusCode))
		hw.raw(`</p></section>`)
		return hw.err
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
