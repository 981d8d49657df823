package registry

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New[string, int]()
	assert.NotNil(t, r)
	assert.Equal(t, 0, r.Len())
	assert.False(t, r.IsSealed())
}

func TestRegisterAndGet(t *testing.T) {
	r := New[string, int]()

	require.NoError(t, r.Register("one", 1))
	require.NoError(t, r.Register("two", 2))

	v, ok := r.Get("one")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	// Non-existent key
	v, ok = r.Get("three")
	assert.False(t, ok)
	assert.Equal(t, 0, v)
}

func TestRegisterOverwrite(t *testing.T) {
	r := New[string, string]()

	require.NoError(t, r.Register("key", "old"))
	require.NoError(t, r.Register("key", "new"))

	v, ok := r.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, r.Len())
}

func TestDelete(t *testing.T) {
	r := New[string, int]()
	require.NoError(t, r.Register("k", 1))
	require.NoError(t, r.Delete("k"))
	assert.False(t, r.Has("k"))

	// Deleting a missing key is fine
	assert.NoError(t, r.Delete("missing"))
}

func TestKeysSorted(t *testing.T) {
	r := New[string, int]()
	for _, k := range []string{"var", "+", "and", "=="} {
		require.NoError(t, r.Register(k, 0))
	}
	assert.Equal(t, []string{"+", "==", "and", "var"}, r.Keys())
}

func TestSealed(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2}
	r := Sealed(src)

	assert.True(t, r.IsSealed())
	assert.Equal(t, 2, r.Len())

	// Writes are rejected
	assert.ErrorIs(t, r.Register("c", 3), ErrSealed)
	assert.ErrorIs(t, r.Delete("a"), ErrSealed)
	assert.True(t, r.Has("a"))

	// The source map is copied
	src["z"] = 26
	assert.False(t, r.Has("z"))

	_, err := r.GetOrCreate("new", func() (int, error) { return 1, nil })
	assert.ErrorIs(t, err, ErrSealed)

	v, err := r.GetOrCreate("b", func() (int, error) { return 99, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetOrCreate(t *testing.T) {
	r := New[string, int]()

	v, err := r.GetOrCreate("k", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = r.GetOrCreate("k", func() (int, error) { return 8, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestGetOrCreate_FactoryError(t *testing.T) {
	r := New[string, int]()
	boom := errors.New("boom")

	_, err := r.GetOrCreate("k", func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, r.Has("k"))
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	r := New[string, int]()
	var calls atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.GetOrCreate("shared", func() (int, error) {
				calls.Add(1)
				return 1, nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestConcurrentReadWrite(t *testing.T) {
	r := New[string, int]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = r.Register(fmt.Sprintf("k%d", i), i)
		}(i)
		go func(i int) {
			defer wg.Done()
			r.Get(fmt.Sprintf("k%d", i))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, r.Len())
}
