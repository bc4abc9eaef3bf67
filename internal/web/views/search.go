package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

// SearchResults renders the autocomplete dropdown. Each entry carries
// its title in a data attribute so the page script can copy it into the
// input on selection.
func SearchResults(products []catalog.Product) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<ul class="search-dropdown" role="listbox">
`)
		if len(products) == 0 {
			hw.raw(`  <li class="search-empty">No matching products</li>
`)
		}
		for i := range products {
			hw.raw(`  <li role="option"><button type="button" class="search-result" data-title="`)
			hw.text(products[i].Title)
			hw.raw(`">`)
			hw.text(products[i].Title)
			hw.raw(`</button></li>
`)
		}
		hw.raw(`</ul>
`)
		return hw.finish()
	})
}

// SearchError renders the inline failure message shown in place of the
// dropdown. The message is deliberately generic; the cause goes to the
// log, not the user.
func SearchError() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw(`<div class="search-error" role="alert">Search is unavailable right now. Try again in a moment.</div>
`)
		return hw.finish()
	})
}
