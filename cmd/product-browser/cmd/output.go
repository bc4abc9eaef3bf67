package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/Rohitwap/product-browser/internal/api/client"
	"github.com/Rohitwap/product-browser/internal/catalog"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductsTable(resp *apiclient.ProductsResponse) error {
	tw := newTabWriter(os.Stdout)
	writeProductRows(tw, resp.Products)
	tw.writef("\nPage %d of %d (%d products)\n", resp.Page, resp.TotalPages, resp.Total)
	return tw.finish()
}

func printSearchTable(resp *apiclient.SearchResponse) error {
	tw := newTabWriter(os.Stdout)
	writeProductRows(tw, resp.Products)
	tw.writef("\n%d matching products\n", resp.Total)
	return tw.finish()
}

func writeProductRows(tw *tabWriter, products []catalog.Product) {
	tw.writef("ID\tTITLE\tBRAND\tCATEGORY\tPRICE\tRATING\tSTOCK\n")
	for i := range products {
		p := &products[i]
		brand := p.Brand
		if brand == "" {
			brand = "-"
		}
		tw.writef("%d\t%s\t%s\t%s\t$%.2f\t%.2f\t%d\n",
			p.ID,
			truncate(p.Title, 40),
			brand,
			p.Category,
			p.Price,
			p.Rating,
			p.Stock,
		)
	}
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
