package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Rohitwap/product-browser/internal/catalog"
)

// ProductsResponse wraps a paginated product listing response.
type ProductsResponse struct {
	Products   []catalog.Product `json:"products"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
	Limit      int               `json:"limit"`
}

// SearchResponse wraps a product search response.
type SearchResponse struct {
	Products []catalog.Product `json:"products"`
	Total    int               `json:"total"`
}

// ListProducts returns one page of products. Zero parameters fall back
// to the server's defaults.
func (c *Client) ListProducts(ctx context.Context, page, limit int) (*ProductsResponse, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ProductsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchProducts returns products matching a free-text query.
func (c *Client) SearchProducts(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
