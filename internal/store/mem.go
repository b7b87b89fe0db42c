package store

import "sync"

// MemStore is an in-memory TableStore. It backs tests and sessions run
// without a database, the way the original fell back to in-memory state
// when no spreadsheet was configured.
type MemStore struct {
	mu     sync.Mutex
	tables map[string][]Row
}

func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string][]Row)}
}

var _ TableStore = (*MemStore)(nil)

func (s *MemStore) ReadTable(name string) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]Row, 0, len(s.tables[name]))
	for _, r := range s.tables[name] {
		cp := make(Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		rows = append(rows, cp)
	}
	return rows, nil
}

func (s *MemStore) WriteTable(name string, rows []Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]Row, 0, len(rows))
	for _, r := range rows {
		rc := make(Row, len(r))
		for k, v := range r {
			rc[k] = v
		}
		cp = append(cp, rc)
	}
	s.tables[name] = cp
	return nil
}
