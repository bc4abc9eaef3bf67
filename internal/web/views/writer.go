// Package views renders the front end's HTML as code-only templ
// components: plain Go functions returning templ.Component, with
// escaping delegated to templ.
package views

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates markup with error tracking so component bodies
// read as straight-line output instead of a ladder of error checks.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

// raw writes trusted markup as-is.
func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// rawf writes trusted markup with formatting. Interpolated values must
// already be escaped or be non-string data (page numbers, counts).
func (hw *htmlWriter) rawf(format string, args ...any) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintf(hw.w, format, args...)
}

// text writes untrusted text, HTML-escaped. Safe for element content and
// double-quoted attribute values.
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) finish() error {
	return hw.err
}
