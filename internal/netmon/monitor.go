// Package netmon watches connectivity to the remote backend.
//
// The monitor is a two-state machine (offline, online) fed by a periodic
// reachability probe. State transitions are published on a channel so the
// sync layer can react to reconnection without polling the monitor.
package netmon

import (
	"context"
	"net"
	"net/url"
	"sync"
	"time"

	"github.com/flightbag/flightbag/internal/logger"
)

const probeTimeout = 3 * time.Second

// Monitor probes the remote endpoint on an interval and reports the current
// online state plus offline/online transitions.
type Monitor struct {
	probe    func(ctx context.Context) bool
	interval time.Duration
	logger   *logger.Logger

	mu     sync.RWMutex
	online bool

	events chan bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New builds a Monitor probing the host of baseURL every interval. An
// interval of zero or less defaults to 30 seconds.
func New(baseURL string, interval time.Duration, log *logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	addr := probeAddr(baseURL)
	probe := func(ctx context.Context) bool {
		d := net.Dialer{Timeout: probeTimeout}
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}

	return &Monitor{
		probe:    probe,
		interval: interval,
		logger:   log,
		events:   make(chan bool, 1),
	}
}

// Online reports the last observed connectivity state.
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Events returns the transition channel. Each value is the new state after a
// transition; consecutive identical states are never sent. Events coalesce if
// the consumer lags, keeping only the most recent transition.
func (m *Monitor) Events() <-chan bool {
	return m.events
}

// Run probes once synchronously to seed the state, then keeps probing in the
// background until ctx is cancelled or Stop is called. Run does not block.
func (m *Monitor) Run(ctx context.Context) {
	m.Stop()

	m.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.online = m.probe(runCtx)
	m.wg.Add(1)
	m.mu.Unlock()

	m.logger.Debug().Bool("online", m.Online()).Msg("connectivity monitor started")

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(m.interval)
		defer t.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.C:
				m.observe(m.probe(runCtx))
			}
		}
	}()
}

// Stop cancels the probe loop and waits for it to exit. Safe to call when
// the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}

func (m *Monitor) observe(online bool) {
	m.mu.Lock()
	changed := online != m.online
	m.online = online
	m.mu.Unlock()

	if !changed {
		return
	}

	m.logger.Info().Bool("online", online).Msg("connectivity changed")

	// Coalesce: drop a stale queued transition before sending the new one.
	select {
	case <-m.events:
	default:
	}
	select {
	case m.events <- online:
	default:
	}
}

func probeAddr(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}

	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "https":
			host = net.JoinHostPort(u.Hostname(), "443")
		default:
			host = net.JoinHostPort(u.Hostname(), "80")
		}
	}
	return host
}
