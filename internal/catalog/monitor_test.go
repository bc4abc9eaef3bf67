package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Rohitwap/product-browser/internal/catalog"
	"github.com/Rohitwap/product-browser/internal/catalog/mocks"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMonitor_Probe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		setupMock func(*mocks.MockClient)
		wantUp    bool
	}{
		{
			name: "reachable catalog reports up",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					List(mock.Anything, catalog.ListRequest{Limit: 1}).
					Return(&catalog.ProductPage{Total: 95}, nil).
					Once()
			},
			wantUp: true,
		},
		{
			name: "unreachable catalog reports down",
			setupMock: func(m *mocks.MockClient) {
				m.EXPECT().
					List(mock.Anything, catalog.ListRequest{Limit: 1}).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			wantUp: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := mocks.NewMockClient(t)
			tt.setupMock(client)

			m, err := catalog.NewMonitor(client, time.Minute, discard())
			require.NoError(t, err)

			assert.Equal(t, tt.wantUp, m.Probe(context.Background()))
		})
	}
}

func TestMonitor_StartProbesImmediately(t *testing.T) {
	t.Parallel()

	client := mocks.NewMockClient(t)
	client.EXPECT().
		List(mock.Anything, catalog.ListRequest{Limit: 1}).
		Return(&catalog.ProductPage{Total: 1}, nil)

	m, err := catalog.NewMonitor(client, time.Hour, discard())
	require.NoError(t, err)

	m.Start()
	defer func() { <-m.Stop().Done() }()

	assert.True(t, m.Up())
}
