package lfl

import "sync"

// Option configures a List constructed by New: a value of function type,
// applied to the list in the order passed to New. The zero value (no
// options) configures the default behavior documented on each option below.
type Option[T any] func(*List[T])

// WithAllocator installs a caller-supplied allocator for the allocating
// insert variants (InsertHead, InsertTail). fn is called with no
// arguments and must return a fresh, detached node or a non-nil error.
//
// The zero value (no WithAllocator option) uses a plain allocation that
// never fails. WithAllocator exists so integration tests can simulate
// ResourceExhausted deterministically, and so callers with their own
// arena or slab allocator can plug it in.
//
// WithAllocator and WithPool are mutually exclusive; installing both
// panics, since WithPool already determines how nodes are obtained and
// recycled.
func WithAllocator[T any](fn func() (*Node[T], error)) Option[T] {
	return func(l *List[T]) {
		if l.pool != nil {
			panic("lfl: WithAllocator and WithPool are mutually exclusive")
		}
		l.allocate = fn
	}
}

// WithPool installs a sync.Pool-backed allocator: allocating inserts draw
// a node from the pool (or allocate fresh if the pool is empty), and
// Delete, Sweep, and Clear return a freed node's memory to the pool after
// resetting its fields to their zero state, rather than simply dropping
// the reference to the garbage collector.
//
// Pooling is worthwhile under a high churn rate of insert-then-remove
// cycles, where it avoids repeated heap allocation for the node struct.
func WithPool[T any]() Option[T] {
	return func(l *List[T]) {
		if l.allocate != nil {
			panic("lfl: WithAllocator and WithPool are mutually exclusive")
		}
		l.pool = newNodePool[T]()
		l.allocate = l.pool.get
	}
}

// nodePool wraps a sync.Pool of *Node[T].
type nodePool[T any] struct {
	pool sync.Pool
}

func newNodePool[T any]() *nodePool[T] {
	return &nodePool[T]{}
}

func (p *nodePool[T]) get() (*Node[T], error) {
	if n, ok := p.pool.Get().(*Node[T]); ok {
		return n, nil
	}
	return &Node[T]{}, nil
}

func (p *nodePool[T]) put(n *Node[T]) {
	n.reset()
	var zero T
	n.Value = zero
	p.pool.Put(n)
}

// free returns n's memory to l's pool if one is installed; otherwise it is
// a no-op and n is left for the garbage collector once the list and any
// caller drop their last reference to it.
func (l *List[T]) free(n *Node[T]) {
	if l.pool != nil {
		l.pool.put(n)
	}
}

func (l *List[T]) alloc(value T) (*Node[T], error) {
	if l.allocate == nil {
		return &Node[T]{Value: value}, nil
	}
	n, err := l.allocate()
	if err != nil {
		return nil, err
	}
	n.Value = value
	return n, nil
}
