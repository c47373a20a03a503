package sheetstore

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-memory Store used when no spreadsheet is configured
// and in tests. The mutex only protects the maps themselves; like the sheet
// backend, read-modify-write sequences across calls are last-writer-wins.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][][]string)}
}

// NewMemoryStoreWithFixtures creates an in-memory store pre-seeded with the
// static development fixtures.
func NewMemoryStoreWithFixtures() *MemoryStore {
	store := NewMemoryStore()
	for table, rows := range Fixtures() {
		store.tables[table] = rows
	}
	return store
}

// ReadAll returns every row of the table, header row included.
func (m *MemoryStore) ReadAll(ctx context.Context, table string) ([][]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := m.tables[table]
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

// Append adds rows to the end of the table.
func (m *MemoryStore) Append(ctx context.Context, table string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range rows {
		m.tables[table] = append(m.tables[table], append([]string(nil), row...))
	}
	return nil
}

// UpdateRow overwrites a single 1-based row of the table.
func (m *MemoryStore) UpdateRow(ctx context.Context, table string, rowIndex int, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := m.tables[table]
	i := rowIndex - 1
	if i < 0 || i >= len(rows) {
		return fmt.Errorf("row %d out of range for table %s", rowIndex, table)
	}
	rows[i] = append([]string(nil), row...)
	return nil
}

// Overwrite replaces the whole table.
func (m *MemoryStore) Overwrite(ctx context.Context, table string, rows [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replacement := make([][]string, len(rows))
	for i, row := range rows {
		replacement[i] = append([]string(nil), row...)
	}
	m.tables[table] = replacement
	return nil
}
