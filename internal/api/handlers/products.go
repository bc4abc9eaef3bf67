package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

// ProductsHandler handles typed product listing endpoints.
type ProductsHandler struct {
	client   catalog.Client
	pageSize int
}

// NewProductsHandler creates a new ProductsHandler using the given fixed
// default page size.
func NewProductsHandler(client catalog.Client, pageSize int) *ProductsHandler {
	return &ProductsHandler{client: client, pageSize: pageSize}
}

// ListProductsInput is the input for the paginated product listing.
type ListProductsInput struct {
	Page  int `query:"page"  doc:"Page number (1-based)"          minimum:"1"`
	Limit int `query:"limit" doc:"Products per page (default 10)" minimum:"1" maximum:"100"`
}

// ListProductsOutput is the response for the paginated product listing.
type ListProductsOutput struct {
	Body struct {
		Products   []catalog.Product `json:"products"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		TotalPages int               `json:"total_pages"`
		Limit      int               `json:"limit"`
	}
}

// ListProducts returns one page of catalog products together with the
// derived page count.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = h.pageSize
	}

	resp, err := h.client.List(ctx, catalog.ListRequest{
		Limit: limit,
		Skip:  (page - 1) * limit,
	})
	if err != nil {
		return nil, huma.Error502BadGateway("catalog API error: " + err.Error())
	}

	out := &ListProductsOutput{}
	out.Body.Products = resp.Products
	out.Body.Total = resp.Total
	out.Body.Page = page
	out.Body.TotalPages = totalPages(resp.Total, limit)
	out.Body.Limit = limit
	return out, nil
}

// totalPages computes ceil(total/limit).
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// RegisterProductRoutes registers product listing endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns one page of catalog products with pagination metadata.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListProducts)
}
