package handlers_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rohitwap/product-browser/internal/api/handlers"
	"github.com/Rohitwap/product-browser/internal/catalog"
	"github.com/Rohitwap/product-browser/internal/catalog/mocks"
)

func TestSearchHandler_SearchProducts(t *testing.T) {
	t.Parallel()

	phones := []catalog.Product{
		{ID: 1, Title: "iPhone 9"},
		{ID: 2, Title: "iPhone X"},
		{ID: 3, Title: "Samsung Universe 9"},
		{ID: 4, Title: "OPPOF19"},
		{ID: 5, Title: "Huawei P30"},
	}

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockClient)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "matching query returns up to five products",
			query: "?q=phone",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, catalog.SearchRequest{Query: "phone", Limit: 5}).
					Return(&catalog.ProductPage{Products: phones, Total: 5}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":5`,
		},
		{
			name:       "missing query short-circuits to empty result",
			query:      "",
			setupMock:  func(*mocks.MockClient) {},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name:       "whitespace-only query never reaches the catalog",
			query:      "?q=" + url.QueryEscape("   "),
			setupMock:  func(*mocks.MockClient) {},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name:  "explicit limit forwarded",
			query: "?q=laptop&limit=3",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, catalog.SearchRequest{Query: "laptop", Limit: 3}).
					Return(&catalog.ProductPage{Products: phones[:3], Total: 3}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":3`,
		},
		{
			name:  "catalog failure returns 502",
			query: "?q=phone",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, mock.Anything).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `catalog API error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.setupMock(client)

			h := handlers.NewSearchHandler(client, 5)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, h)

			resp := api.Get("/api/v1/search" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
