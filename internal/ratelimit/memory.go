package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type window struct {
	count   int
	resetAt time.Time
}

// Memory keeps windows in process memory. Counts are per instance and
// reset on restart.
type Memory struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]*window
}

// NewMemory creates an in-memory limiter with the given window length
func NewMemory(windowLength time.Duration) *Memory {
	return &Memory{
		window:  windowLength,
		entries: make(map[string]*window),
	}
}

// Allow implements Limiter
func (m *Memory) Allow(ctx context.Context, key string, max int, now time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		m.entries[key] = &window{count: 1, resetAt: now.Add(m.window)}
		return true, nil
	}

	if entry.count >= max {
		return false, nil
	}
	entry.count++
	return true, nil
}

// Sweep drops expired windows and returns how many were removed
func (m *Memory) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, entry := range m.entries {
		if !now.Before(entry.resetAt) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// RunJanitor sweeps expired windows every interval until ctx is done
func (m *Memory) RunJanitor(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := m.Sweep(now); removed > 0 {
				logger.Debug("rate limit windows swept", "removed", removed)
			}
		}
	}
}
