package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Rohitwap/product-browser/internal/api/handlers"
	"github.com/Rohitwap/product-browser/internal/catalog/mocks"
	"github.com/Rohitwap/product-browser/pkg/logger"
)

func TestProxyHandler_Products(t *testing.T) {
	t.Parallel()

	// Field order intentionally differs from what a re-marshal would
	// produce; the proxy must not disturb it.
	upstream := `{"total":95,"products":[{"id":1,"title":"iPhone 9"}],"limit":10,"skip":0}`

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockClient)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "defaults to page 1 limit 10",
			query: "",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 10, 0).
					Return([]byte(upstream), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   upstream,
		},
		{
			name:  "page translated to offset",
			query: "?page=10&limit=10",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 10, 90).
					Return([]byte(upstream), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   upstream,
		},
		{
			name:  "custom limit changes offset math",
			query: "?page=3&limit=5",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 5, 10).
					Return([]byte(upstream), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   upstream,
		},
		{
			name:  "malformed page falls back to default",
			query: "?page=abc",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 10, 0).
					Return([]byte(upstream), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   upstream,
		},
		{
			name:  "zero page falls back to default",
			query: "?page=0",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 10, 0).
					Return([]byte(upstream), nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   upstream,
		},
		{
			name:  "upstream failure yields generic error payload",
			query: "?page=2",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					ListRaw(mock.Anything, 10, 10).
					Return(nil, errors.New("catalog API error (status 503)")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"failed to fetch products"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.setupMock(client)

			h := handlers.NewProxyHandler(client, logger.New("error", "text"))

			e := echo.New()
			handlers.RegisterProxyRoutes(e.Group("/api"), h)

			req := httptest.NewRequest(http.MethodGet, "/api/product"+tt.query, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				// Byte-for-byte passthrough.
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
