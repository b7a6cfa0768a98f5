package lfl_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concurrencylabs/lfl"
)

func TestRegistryGetCreatesOnFirstAccess(t *testing.T) {
	r := lfl.NewRegistry[int]()

	l := r.Get("workers")
	require.NotNil(t, l)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryGetReturnsSameListForSameName(t *testing.T) {
	r := lfl.NewRegistry[int]()

	a := r.Get("shard-1")
	a.InsertTail(1)

	b := r.Get("shard-1")
	assert.Same(t, a, b)
	assert.Equal(t, 1, b.CountLive())
}

func TestRegistryGetDistinctNamesAreIndependent(t *testing.T) {
	r := lfl.NewRegistry[int]()

	r.Get("a").InsertTail(1)
	r.Get("b").InsertTail(2)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 1, r.Get("a").CountLive())
	assert.Equal(t, 1, r.Get("b").CountLive())
}

func TestRegistryDeleteRemovesNameNotContents(t *testing.T) {
	r := lfl.NewRegistry[int]()
	l := r.Get("temp")
	l.InsertTail(1)

	r.Delete("temp")
	assert.Equal(t, 0, r.Len())

	fresh := r.Get("temp")
	assert.NotSame(t, l, fresh)
	assert.Equal(t, 0, fresh.CountLive())
}

func TestRegistryRangeVisitsEveryEntry(t *testing.T) {
	r := lfl.NewRegistry[int]()
	r.Get("a")
	r.Get("b")
	r.Get("c")

	seen := map[string]bool{}
	r.Range(func(name string, l *lfl.List[int]) bool {
		seen[name] = true
		return true
	})

	assert.Len(t, seen, 3)
	assert.True(t, seen["a"] && seen["b"] && seen["c"])
}

func TestRegistryOptionsAppliedToCreatedLists(t *testing.T) {
	r := lfl.NewRegistry(lfl.WithPool[int]())
	l := r.Get("pooled")

	n, err := l.InsertTail(1)
	require.NoError(t, err)
	n.MarkRemoved()
	l.Sweep(nil)

	reused, err := l.InsertTail(2)
	require.NoError(t, err)
	assert.Equal(t, 2, reused.Value)
}

func TestRegistryGetConcurrentFirstAccessConverges(t *testing.T) {
	r := lfl.NewRegistry[int]()

	const workers = 32
	lists := make([]*lfl.List[int], workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			lists[i] = r.Get("contended")
		}(i)
	}
	wg.Wait()

	first := lists[0]
	for _, l := range lists {
		assert.Same(t, first, l)
	}
	assert.Equal(t, 1, r.Len())
}
