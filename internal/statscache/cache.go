package statscache

import (
	"context"
	"sync"
)

// DayCounts guarda contagens de atendimentos por chave de data
// ("2006-01-02"). Toda mutação do conjunto concluído de uma data deve
// invalidar a entrada correspondente.
type DayCounts interface {
	Get(ctx context.Context, date string) (int64, bool)
	Set(ctx context.Context, date string, count int64)
	Invalidate(ctx context.Context, date string)
}

// --------------------------------------------------
// In-memory
// --------------------------------------------------

type Memory struct {
	mu     sync.RWMutex
	counts map[string]int64
}

func NewMemory() *Memory {
	return &Memory{counts: make(map[string]int64)}
}

func (m *Memory) Get(_ context.Context, date string) (int64, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count, ok := m.counts[date]
	return count, ok
}

func (m *Memory) Set(_ context.Context, date string, count int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[date] = count
}

func (m *Memory) Invalidate(_ context.Context, date string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counts, date)
}

var _ DayCounts = (*Memory)(nil)
