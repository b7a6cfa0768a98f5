package lfl_test

import (
	"errors"
	"testing"

	"github.com/concurrencylabs/lfl"
	"github.com/concurrencylabs/lfl/internal/testutil"
)

func values(l *lfl.List[int]) []int {
	var out []int
	l.ForEachLive(func(n *lfl.Node[int]) bool {
		out = append(out, n.Value)
		return true
	})
	return out
}

func TestInsertTailOrder(t *testing.T) {
	l := lfl.New[int]()

	for _, v := range []int{1, 2, 3} {
		if _, err := l.InsertTail(v); err != nil {
			t.Fatalf("InsertTail(%d): %v", v, err)
		}
	}

	testutil.AssertEqual(t, values(l), []int{1, 2, 3})
	testutil.AssertEqual(t, l.Head().Value, 1)
	testutil.AssertEqual(t, l.Tail().Value, 3)
	testutil.AssertEqual(t, l.Head().Prev(), (*lfl.Node[int])(nil))
	testutil.AssertEqual(t, l.Tail().Next(), (*lfl.Node[int])(nil))
}

func TestInsertHeadOrder(t *testing.T) {
	l := lfl.New[int]()

	for _, v := range []int{1, 2, 3} {
		if _, err := l.InsertHead(v); err != nil {
			t.Fatalf("InsertHead(%d): %v", v, err)
		}
	}

	testutil.AssertEqual(t, values(l), []int{3, 2, 1})
	testutil.AssertEqual(t, l.Head().Value, 3)
	testutil.AssertEqual(t, l.Tail().Value, 1)
}

func TestInsertSingleNodeHeadEqualsTail(t *testing.T) {
	l := lfl.New[int]()
	n, err := l.InsertTail(7)
	if err != nil {
		t.Fatalf("InsertTail: %v", err)
	}

	testutil.AssertEqual(t, l.Head(), n)
	testutil.AssertEqual(t, l.Tail(), n)
	testutil.AssertEqual(t, n.Prev(), (*lfl.Node[int])(nil))
	testutil.AssertEqual(t, n.Next(), (*lfl.Node[int])(nil))
}

func TestInsertTailRejectsAllocatorFailure(t *testing.T) {
	boom := errors.New("boom")
	l := lfl.New(lfl.WithAllocator[int](func() (*lfl.Node[int], error) {
		return nil, boom
	}))

	n, err := l.InsertTail(1)
	testutil.AssertEqual(t, n, (*lfl.Node[int])(nil))
	if !errors.Is(err, boom) {
		t.Fatalf("expected error to wrap %v, got %v", boom, err)
	}
	testutil.AssertEqual(t, l.Head(), (*lfl.Node[int])(nil))
}

func TestWithAllocatorAndWithPoolMutuallyExclusive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic combining WithAllocator and WithPool")
		}
	}()
	lfl.New(lfl.WithPool[int](), lfl.WithAllocator[int](func() (*lfl.Node[int], error) {
		return lfl.NewNode(0), nil
	}))
}
