package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListProducts(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"catalog unavailable"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListProducts(context.Background(), 1, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 502)")
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"products":    []map[string]any{{"id": 21, "title": "Sneakers"}},
			"total":       95,
			"page":        3,
			"total_pages": 10,
			"limit":       10,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListProducts(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 95, resp.Total)
	assert.Equal(t, 10, resp.TotalPages)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Sneakers", resp.Products[0].Title)
}

func TestClient_ListProducts_DefaultsOmitParams(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[],"total":0,"page":1,"total_pages":0,"limit":10}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListProducts(context.Background(), 0, 0)
	require.NoError(t, err)
}

func TestClient_SearchProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "phone case", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"id":1,"title":"Phone Case"}],"total":1}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SearchProducts(context.Background(), "phone case", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Phone Case", resp.Products[0].Title)
}
