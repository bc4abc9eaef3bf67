// Package main implements a mock catalog API server for local development.
// It serves canned products from a JSON fixture, mimicking the upstream
// catalog's /products and /products/search endpoints so the browser can run
// without internet access.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type catalogResponse struct {
	Products []json.RawMessage `json:"products"`
	Total    int               `json:"total"`
	Skip     int               `json:"skip"`
	Limit    int               `json:"limit"`
}

type productSummary struct {
	Title    string `json:"title"`
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

func main() {
	port := flag.Int("port", 8090, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-catalog/testdata/products.json", "path to products fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "products", len(fixture.Products))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", listHandler(logger, fixture))
	mux.HandleFunc("GET /products/search", searchHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock catalog server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*catalogResponse, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &resp, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func paging(r *http.Request) (limit, skip int) {
	limit = 30
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("skip")); err == nil && v >= 0 {
		skip = v
	}
	return limit, skip
}

func slicePage(products []json.RawMessage, limit, skip int) []json.RawMessage {
	if skip >= len(products) {
		return []json.RawMessage{}
	}
	end := min(skip+limit, len(products))
	return products[skip:end]
}

func writePage(w http.ResponseWriter, logger *slog.Logger, products []json.RawMessage, total, limit, skip int) {
	resp := catalogResponse{
		Products: products,
		Total:    total,
		Skip:     skip,
		Limit:    limit,
	}
	if resp.Products == nil {
		resp.Products = []json.RawMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(resp)
	logger.Info("page served", "total", total, "returned", len(products), "skip", skip, "limit", limit)
}

func listHandler(logger *slog.Logger, fixture *catalogResponse) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, skip := paging(r)
		page := slicePage(fixture.Products, limit, skip)
		writePage(w, logger, page, len(fixture.Products), limit, skip)
	}
}

func searchHandler(logger *slog.Logger, fixture *catalogResponse) http.HandlerFunc {
	// Pre-parse the searchable fields once.
	type indexedProduct struct {
		raw  json.RawMessage
		text string
	}
	products := make([]indexedProduct, 0, len(fixture.Products))
	for _, raw := range fixture.Products {
		var s productSummary
		//nolint:errcheck,gosec // fixture data is trusted; field extraction is best-effort
		json.Unmarshal(raw, &s)
		text := strings.ToLower(s.Title + " " + s.Brand + " " + s.Category)
		products = append(products, indexedProduct{raw: raw, text: text})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		limit, skip := paging(r)

		var matched []json.RawMessage
		for _, p := range products {
			if q == "" || strings.Contains(p.text, q) {
				matched = append(matched, p.raw)
			}
		}

		total := len(matched)
		page := slicePage(matched, limit, skip)
		writePage(w, logger, page, total, limit, skip)
	}
}
