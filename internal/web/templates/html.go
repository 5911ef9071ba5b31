package templates

import (
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates markup writes and keeps the first error so
// component bodies stay free of per-write error plumbing.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup verbatim.
func (hw *htmlWriter) raw(markup string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, markup)
}

// text writes untrusted text HTML-escaped.
func (hw *htmlWriter) text(value string) {
	hw.raw(templ.EscapeString(value))
}
