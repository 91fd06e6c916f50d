package persist

import "sync"

// Memory holds the encoded record in memory. Used in tests and when no
// storage is configured.
type Memory struct {
	mu  sync.Mutex
	raw []byte
	n   int
}

func (m *Memory) Load() (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.raw == nil {
		return Snapshot{}, nil
	}
	return Decode(m.raw)
}

func (m *Memory) Save(s Snapshot) error {
	raw, err := Encode(s)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw, m.n = raw, m.n+1
	m.mu.Unlock()
	return nil
}

// Saves counts completed writes.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
