package catalog

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Rohitwap/product-browser/internal/metrics"
)

const probeTimeout = 10 * time.Second

// Monitor periodically probes the catalog API and publishes its
// availability as a gauge. The readiness endpoint reads the same signal.
type Monitor struct {
	cron   *cron.Cron
	client Client
	log    *slog.Logger

	up atomic.Bool
}

// NewMonitor creates a Monitor probing the catalog every interval.
func NewMonitor(client Client, interval time.Duration, log *slog.Logger) (*Monitor, error) {
	c := cron.New()

	m := &Monitor{
		cron:   c,
		client: client,
		log:    log,
	}

	if _, err := c.AddFunc("@every "+interval.String(), m.runProbe); err != nil {
		return nil, err
	}

	return m, nil
}

// Start probes once immediately, then begins the periodic schedule.
func (m *Monitor) Start() {
	m.runProbe()
	m.cron.Start()
	m.log.Info("catalog monitor started")
}

// Stop stops the schedule, waiting for a running probe to finish.
func (m *Monitor) Stop() context.Context {
	m.log.Info("catalog monitor stopping")
	return m.cron.Stop()
}

// Up reports the outcome of the most recent probe.
func (m *Monitor) Up() bool {
	return m.up.Load()
}

func (m *Monitor) runProbe() {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	m.up.Store(m.Probe(ctx))
}

// Probe issues a minimal listing fetch and records the result. Exported
// so readiness checks can trigger an on-demand probe.
func (m *Monitor) Probe(ctx context.Context) bool {
	_, err := m.client.List(ctx, ListRequest{Limit: 1})
	if err != nil {
		metrics.CatalogUp.Set(0)
		m.log.Warn("catalog availability probe failed", "error", err)
		return false
	}

	metrics.CatalogUp.Set(1)
	return true
}
