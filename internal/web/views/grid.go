package views

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

// GridData drives the product grid fragment.
type GridData struct {
	Products   []catalog.Product
	Page       int
	TotalPages int
	// ImageHosts is the CDN hostname allowlist for thumbnails.
	ImageHosts []string
	// Failed marks an upstream fetch failure; the fragment renders the
	// retry state instead of the grid.
	Failed bool
}

// Grid renders the product grid with its pagination controls, or the
// error-and-retry state when the fetch failed. The fragment targets
// #product-list so htmx swaps replace the whole grid state at once.
func Grid(data GridData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		if data.Failed {
			writeGridError(hw, data.Page)
			return hw.finish()
		}

		hw.raw(`<div id="grid-loading">Loading products…</div>
<ul class="product-grid">
`)
		for i := range data.Products {
			writeProductCard(hw, &data.Products[i], data.ImageHosts)
		}
		hw.raw(`</ul>
`)
		writePagination(hw, data.Page, data.TotalPages)

		return hw.finish()
	})
}

func writeProductCard(hw *htmlWriter, p *catalog.Product, imageHosts []string) {
	hw.raw(`  <li class="product-card">
`)
	if imageAllowed(p.Thumbnail, imageHosts) {
		hw.raw(`    <img src="`)
		hw.text(string(templ.URL(p.Thumbnail)))
		hw.raw(`" alt="`)
		hw.text(p.Title)
		hw.raw(`" loading="lazy">
`)
	} else {
		hw.raw(`    <div class="thumb-placeholder" aria-hidden="true"></div>
`)
	}

	hw.raw(`    <p class="product-title">`)
	hw.text(p.Title)
	hw.raw(`</p>
    <p class="product-meta">`)
	hw.text(brandAndCategory(p))
	hw.raw(`</p>
    <p class="product-price">$`)
	hw.rawf("%.2f", p.Price)
	hw.raw(`</p>
    <p class="product-meta">`)
	hw.rawf("★ %.2f · %d in stock", p.Rating, p.Stock)
	hw.raw(`</p>
  </li>
`)
}

func brandAndCategory(p *catalog.Product) string {
	if p.Brand == "" {
		return p.Category
	}
	return p.Brand + " · " + p.Category
}

// writePagination renders previous/next controls. Controls at the bounds
// are disabled rather than hidden, and the disabled side carries no
// request attributes at all.
func writePagination(hw *htmlWriter, page, totalPages int) {
	hw.raw(`<nav class="pagination" aria-label="Pagination">
`)
	if page > 1 {
		hw.rawf(`  <button hx-get="/products?page=%d" hx-target="#product-list" hx-indicator="#grid-loading" hx-disabled-elt="this">Previous</button>
`, page-1)
	} else {
		hw.raw(`  <button disabled>Previous</button>
`)
	}

	hw.rawf(`  <span>Page %d of %d</span>
`, page, totalPages)

	if page < totalPages {
		hw.rawf(`  <button hx-get="/products?page=%d" hx-target="#product-list" hx-indicator="#grid-loading" hx-disabled-elt="this">Next</button>
`, page+1)
	} else {
		hw.raw(`  <button disabled>Next</button>
`)
	}
	hw.raw(`</nav>
`)
}

func writeGridError(hw *htmlWriter, page int) {
	hw.raw(`<div class="grid-error" role="alert">
  <p>Something went wrong while loading products.</p>
`)
	hw.rawf(`  <button hx-get="/products?page=%d" hx-target="#product-list" hx-indicator="#grid-loading">Retry</button>
`, page)
	hw.raw(`</div>
`)
}

// imageAllowed reports whether a thumbnail URL points at one of the
// catalog's known CDN hosts. Anything else renders as a placeholder.
func imageAllowed(raw string, hosts []string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range hosts {
		if host == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}
