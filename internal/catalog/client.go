// Package catalog provides a client for the external product catalog API
// abstracted behind an interface for testability.
package catalog

import (
	"context"
)

// ListRequest defines the parameters for a paginated product listing fetch.
type ListRequest struct {
	Limit int
	Skip  int
}

// SearchRequest defines the parameters for a free-text product search.
type SearchRequest struct {
	Query string
	Limit int
}

// Client defines the interface for interacting with the catalog API.
type Client interface {
	// List fetches one page of products at the given offset.
	List(ctx context.Context, req ListRequest) (*ProductPage, error)
	// Search returns products matching a free-text query.
	Search(ctx context.Context, req SearchRequest) (*ProductPage, error)
	// ListRaw fetches a listing page and returns the upstream JSON body
	// untouched, for passthrough serving.
	ListRaw(ctx context.Context, limit, skip int) ([]byte, error)
}
