package benchmarks

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/rulestore"
)

// BenchmarkMemoryStore_Save measures in-memory rule save.
func BenchmarkMemoryStore_Save(b *testing.B) {
	benchmarkSave(b, rulestore.NewMemoryStore())
}

// BenchmarkMemoryStore_Get measures in-memory rule load.
func BenchmarkMemoryStore_Get(b *testing.B) {
	benchmarkGet(b, rulestore.NewMemoryStore())
}

// BenchmarkSQLiteStore_Save measures SQLite rule save.
func BenchmarkSQLiteStore_Save(b *testing.B) {
	benchmarkSave(b, newSQLiteStore(b))
}

// BenchmarkSQLiteStore_Get measures SQLite rule load.
func BenchmarkSQLiteStore_Get(b *testing.B) {
	benchmarkGet(b, newSQLiteStore(b))
}

// BenchmarkApplyRule_SQLite measures loading and applying a stored rule.
func BenchmarkApplyRule_SQLite(b *testing.B) {
	store := newSQLiteStore(b)
	defer store.Close()
	if _, err := store.Save("temp", []byte(branchRule)); err != nil {
		b.Fatal(err)
	}
	engine := jsonlogic.New()
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = engine.ApplyRule(ctx, store, "temp", `{"temp": 55}`)
	}
}

func benchmarkSave(b *testing.B, store rulestore.Store) {
	defer store.Close()
	logic := []byte(reduceRule)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Save("rule", logic)
	}
}

func benchmarkGet(b *testing.B, store rulestore.Store) {
	defer store.Close()
	if _, err := store.Save("rule", []byte(reduceRule)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = store.Get("rule")
	}
}

func newSQLiteStore(b *testing.B) *rulestore.SQLiteStore {
	b.Helper()
	store, err := rulestore.NewSQLiteStore(filepath.Join(b.TempDir(), "rules.db"))
	if err != nil {
		b.Fatal(err)
	}
	return store
}
