// Package rulestore persists named jsonlogic rules.
package rulestore

import (
	"errors"
	"fmt"
	"time"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/codec"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Store persists rules by name.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores logic under name, replacing any previous version.
	// The logic must be valid JSON; it is stored in canonical compact form.
	// A rule keeps its ID across saves and its version increases by one.
	Save(name string, logic []byte) (Rule, error)

	// Get retrieves a rule.
	// Returns ErrNotFound if the rule doesn't exist.
	Get(name string) (Rule, error)

	// List returns metadata for every rule, ordered by name.
	// Returns empty slice (not error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a rule.
	// Returns nil if the rule doesn't exist.
	Delete(name string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Rule is a stored rule with its logic.
type Rule struct {
	ID        string
	Name      string
	Version   int
	UpdatedAt time.Time
	Logic     []byte
}

// Info provides metadata without loading the logic.
type Info struct {
	ID        string
	Name      string
	Version   int
	UpdatedAt time.Time
	Size      int64
}

// Sentinel errors for rule store operations.
var (
	// ErrNotFound indicates a rule doesn't exist.
	ErrNotFound = errors.New("rule not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("rule store closed")

	// ErrInvalidRule indicates the rule name or logic was rejected.
	ErrInvalidRule = errors.New("invalid rule")
)

// Open returns a SQLiteStore for a non-empty path and a MemoryStore otherwise.
func Open(path string) (Store, error) {
	if path == "" {
		return NewMemoryStore(), nil
	}
	return NewSQLiteStore(path)
}

// SaveAll stores every entry of rules, in order.
func SaveAll(s Store, rules *value.Map) error {
	var err error
	rules.Range(func(name string, logic value.Value) bool {
		_, err = s.Save(name, codec.Encode(logic))
		return err == nil
	})
	return err
}

// canonicalize validates a rule and returns its compact encoding.
func canonicalize(name string, logic []byte) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrInvalidRule)
	}
	v, err := codec.Decode(logic)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidRule, name, err)
	}
	return codec.Encode(v), nil
}
