package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, int]()

	s.Set("foo", 42)
	val, ok := s.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = s.Get("bar")
	assert.False(t, ok)
}

func TestStore_InsertionOrder(t *testing.T) {
	s := New[string, int]()
	s.Set("c", 3)
	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 30)

	assert.Equal(t, []string{"c", "a", "b"}, s.Keys())
	assert.Equal(t, []int{30, 1, 2}, s.Values())
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("one", "1")
	s.Set("two", "2")

	assert.True(t, s.Delete("one"))
	assert.False(t, s.Delete("one"))

	_, ok := s.Get("one")
	assert.False(t, ok)
	assert.Equal(t, []string{"two"}, s.Keys())
	assert.Equal(t, 1, s.Len())
}

func TestStore_SnapshotIsDetached(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)

	keys := s.Keys()
	s.Set("b", 2)

	assert.Equal(t, []string{"a"}, keys)
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int]()
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
			s.Get(n)
			s.Values()
		}(i)
	}

	wg.Wait()
	assert.Equal(t, 100, s.Len())
}
