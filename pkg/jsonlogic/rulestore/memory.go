package rulestore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory rule store.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	rules  map[string]Rule
	closed bool
}

// NewMemoryStore creates a new in-memory rule store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rules: make(map[string]Rule),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(name string, logic []byte) (Rule, error) {
	canonical, err := canonicalize(name, logic)
	if err != nil {
		return Rule{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Rule{}, ErrStoreClosed
	}

	rule, ok := m.rules[name]
	if !ok {
		rule = Rule{ID: uuid.New().String(), Name: name}
	}
	rule.Version++
	rule.UpdatedAt = time.Now().UTC()
	rule.Logic = canonical
	m.rules[name] = rule

	return copyRule(rule), nil
}

// Get implements Store.
func (m *MemoryStore) Get(name string) (Rule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Rule{}, ErrStoreClosed
	}

	rule, ok := m.rules[name]
	if !ok {
		return Rule{}, ErrNotFound
	}
	return copyRule(rule), nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.rules))
	for _, r := range m.rules {
		infos = append(infos, Info{
			ID:        r.ID,
			Name:      r.Name,
			Version:   r.Version,
			UpdatedAt: r.UpdatedAt,
			Size:      int64(len(r.Logic)),
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}
	delete(m.rules, name)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.rules = nil
	return nil
}

// copyRule returns r with its own copy of the logic bytes.
func copyRule(r Rule) Rule {
	logic := make([]byte, len(r.Logic))
	copy(logic, r.Logic)
	r.Logic = logic
	return r
}
