package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PageData drives the full page shell.
type PageData struct {
	// Grid is the initial product grid state, rendered inline so the
	// first paint needs no extra round trip.
	Grid GridData
	// DebounceMS is the quiet period, in milliseconds, between the last
	// keystroke and the search lookup.
	DebounceMS int
}

const pageStyle = `
    * { box-sizing: border-box; }
    body { font-family: system-ui, sans-serif; margin: 0; background: #f6f6f8; color: #1c1c28; }
    .container { max-width: 960px; margin: 0 auto; padding: 1.5rem 1rem; }
    #search-widget { position: relative; max-width: 420px; margin-bottom: 1.5rem; }
    #search-input { width: 100%; padding: 0.6rem 0.8rem; font-size: 1rem; border: 1px solid #c8c8d4; border-radius: 6px; }
    .search-dropdown { position: absolute; z-index: 10; left: 0; right: 0; margin: 0.25rem 0 0; padding: 0; list-style: none; background: #fff; border: 1px solid #c8c8d4; border-radius: 6px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); }
    .search-result { display: block; width: 100%; padding: 0.5rem 0.8rem; border: 0; background: none; text-align: left; font-size: 0.95rem; cursor: pointer; }
    .search-result:hover { background: #eef0ff; }
    .search-empty, .search-error { padding: 0.5rem 0.8rem; font-size: 0.9rem; }
    .search-error { color: #b00020; }
    .product-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(160px, 1fr)); gap: 1rem; margin: 0; padding: 0; list-style: none; }
    .product-card { background: #fff; border: 1px solid #e2e2ea; border-radius: 8px; padding: 0.75rem; display: flex; flex-direction: column; gap: 0.25rem; }
    .product-card img, .thumb-placeholder { width: 100%; height: 120px; object-fit: cover; border-radius: 6px; background: #e9e9f0; }
    .product-title { font-weight: 600; font-size: 0.95rem; margin: 0; }
    .product-meta { color: #6a6a7a; font-size: 0.8rem; }
    .product-price { font-weight: 700; }
    .pagination { display: flex; align-items: center; gap: 1rem; justify-content: center; margin-top: 1.5rem; }
    .pagination button { padding: 0.5rem 1.1rem; font-size: 0.95rem; border: 1px solid #c8c8d4; border-radius: 6px; background: #fff; cursor: pointer; }
    .pagination button:disabled { opacity: 0.45; cursor: default; }
    .grid-error { text-align: center; padding: 2rem 1rem; }
    .grid-error button { padding: 0.5rem 1.4rem; border: 1px solid #b00020; color: #b00020; background: #fff; border-radius: 6px; cursor: pointer; }
    #grid-loading { display: none; text-align: center; padding: 0.5rem; color: #6a6a7a; }
    #grid-loading.htmx-request { display: block; }
`

// Inline glue the declarative htmx attributes cannot express: picking a
// dropdown entry copies its title into the input, and clicking anywhere
// outside the widget closes the dropdown.
const pageScript = `
    const widget = document.getElementById('search-widget');
    const input = document.getElementById('search-input');
    const results = document.getElementById('search-results');

    results.addEventListener('click', (e) => {
      const entry = e.target.closest('.search-result');
      if (!entry) return;
      input.value = entry.dataset.title;
      results.innerHTML = '';
    });

    document.addEventListener('click', (e) => {
      if (!widget.contains(e.target)) {
        results.innerHTML = '';
      }
    });
`

// Page renders the full document: search widget, product grid, and the
// htmx wiring that drives both.
func Page(data PageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)

		hw.raw(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Product Browser</title>
  <script src="https://unpkg.com/htmx.org@1.9.12"></script>
  <style>`)
		hw.raw(pageStyle)
		hw.raw(`</style>
</head>
<body>
  <main class="container">
    <h1>Product Browser</h1>
    <div id="search-widget">
`)
		// Trailing debounce: re-typing within the delay reschedules the
		// lookup, and hx-sync aborts any lookup still in flight so a slow
		// stale response can never overwrite a newer one.
		hw.rawf(`      <input id="search-input" type="search" name="q" placeholder="Search products"
             autocomplete="off"
             hx-get="/search" hx-trigger="input changed delay:%dms"
             hx-target="#search-results" hx-sync="this:replace">
`, data.DebounceMS)
		hw.raw(`      <div id="search-results"></div>
    </div>
    <section id="product-list" aria-live="polite">
`)
		if err := hw.finish(); err != nil {
			return err
		}

		if err := Grid(data.Grid).Render(ctx, w); err != nil {
			return err
		}

		hw = newHTMLWriter(w)
		hw.raw(`    </section>
  </main>
  <script>`)
		hw.raw(pageScript)
		hw.raw(`</script>
</body>
</html>
`)
		return hw.finish()
	})
}
