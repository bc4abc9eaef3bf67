package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Rohitwap/product-browser/internal/catalog"
	"github.com/Rohitwap/product-browser/internal/metrics"
)

// SearchHandler handles typed product search requests.
type SearchHandler struct {
	client      catalog.Client
	searchLimit int
}

// NewSearchHandler creates a new SearchHandler capping results at
// searchLimit per query.
func NewSearchHandler(client catalog.Client, searchLimit int) *SearchHandler {
	return &SearchHandler{client: client, searchLimit: searchLimit}
}

// SearchProductsInput is the input for the search endpoint.
type SearchProductsInput struct {
	Query string `query:"q"     doc:"Free-text product query"        minLength:"1" example:"phone"`
	Limit int    `query:"limit" doc:"Maximum results (default 5)"    minimum:"1"   maximum:"25"`
}

// SearchProductsOutput is the response for the search endpoint.
type SearchProductsOutput struct {
	Body struct {
		Products []catalog.Product `json:"products"`
		Total    int               `json:"total"`
	}
}

// SearchProducts proxies a free-text search to the catalog API.
// A query that is blank after trimming never reaches the upstream; it
// answers with an empty result set, matching the widget contract.
func (h *SearchHandler) SearchProducts(
	ctx context.Context,
	input *SearchProductsInput,
) (*SearchProductsOutput, error) {
	out := &SearchProductsOutput{}
	out.Body.Products = []catalog.Product{}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return out, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = h.searchLimit
	}

	metrics.SearchQueriesTotal.Inc()

	resp, err := h.client.Search(ctx, catalog.SearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return nil, huma.Error502BadGateway("catalog API error: " + err.Error())
	}

	out.Body.Products = resp.Products
	out.Body.Total = resp.Total
	return out, nil
}

// RegisterSearchRoutes registers search endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search products",
		Description: "Proxies a free-text search to the catalog API and returns matching products.",
		Tags:        []string{"search"},
		Errors:      []int{http.StatusBadGateway},
	}, h.SearchProducts)
}
