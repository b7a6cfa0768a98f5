package lfl

import "sync/atomic"

// Node is one element of a List. The zero value is a detached node with a
// zero-value payload; it becomes part of a list once passed to
// (*List[T]).InsertHeadNode or (*List[T]).InsertTailNode, or once returned
// by (*List[T]).InsertHead or (*List[T]).InsertTail.
//
// A Node belongs to at most one List for its lifetime (invariant 5). The
// link, removed, and refcount fields are accessed atomically and only
// through the exported accessors; Value is a plain field (see below).
type Node[T any] struct {
	next     atomic.Pointer[Node[T]]
	prev     atomic.Pointer[Node[T]]
	removed  atomic.Bool
	refcount atomic.Int64

	// Value is the opaque, caller-defined payload. It is not synchronized
	// by the list itself: writing to Value concurrently with another
	// goroutine reading it is a data race unless the caller's own
	// discipline (e.g. never mutating Value after publication) rules it
	// out.
	Value T
}

// NewNode allocates a detached node carrying value. It is ready to be
// published with InsertHeadNode or InsertTailNode.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{Value: value}
}

// Next returns the node's successor, or nil if it is the last reachable
// node (or has been unlinked). The load is a single atomic acquire; it does
// not skip logically-removed nodes. Use an iterator (ForEachLive,
// NewIterator) for that.
func (n *Node[T]) Next() *Node[T] { return n.next.Load() }

// Prev returns the node's predecessor, or nil if it is the first reachable
// node (or has been unlinked).
func (n *Node[T]) Prev() *Node[T] { return n.prev.Load() }

// Removed reports whether MarkRemoved has been called on this node.
// Monotonic: once true, it never reports false again (invariant 4).
func (n *Node[T]) Removed() bool { return n.removed.Load() }

// MarkRemoved logically removes the node: it stops appearing in live
// iteration, Find, and CountLive, without any structural change to the
// list. It is idempotent, O(1), safe to call from any goroutine holding a
// reference to the node, and safe to call while other goroutines iterate
// or sweep concurrently.
func (n *Node[T]) MarkRemoved() { n.removed.Store(true) }

// Refcount returns the node's current reference count. The count is
// maintained entirely by callers via Ref and Unref; the list's only
// obligation is to honor a non-zero count by refusing to free the node
// during Sweep.
func (n *Node[T]) Refcount() int64 { return n.refcount.Load() }

// Ref increments the node's reference count and returns the new value.
// Callers must Ref a node before dereferencing it across a yield point
// (e.g. across a channel send, a blocking call, or a goroutine boundary)
// if a concurrent Sweep could otherwise free it.
func (n *Node[T]) Ref() int64 { return n.refcount.Add(1) }

// Unref decrements the node's reference count and returns the new value.
// The caller's last access to the node must happen-before the Unref call
// that drops the count to zero, or a concurrent Sweep may free the node
// while it is still being read.
func (n *Node[T]) Unref() int64 { return n.refcount.Add(-1) }

func (n *Node[T]) reset() {
	n.next.Store(nil)
	n.prev.Store(nil)
	n.removed.Store(false)
	n.refcount.Store(0)
}

// List is a concurrent doubly-linked list anchor: a head/tail pair with no
// sentinel nodes. The zero value is an empty, ready to use list with the
// default (non-pooled) allocator; use New to install options.
//
// Invariant 1: head is nil if and only if tail is nil. Invariant 2: when
// non-empty, head's Prev is nil and tail's Next is nil. These invariants
// hold after every operation returns, but not necessarily at every instant
// during a concurrent mutation in progress on another goroutine.
type List[T any] struct {
	head atomic.Pointer[Node[T]]
	tail atomic.Pointer[Node[T]]

	allocate func() (*Node[T], error)
	pool     *nodePool[T]
}

// New creates an empty list, applying opts in order. With no options, New
// behaves exactly like the zero value: an empty list whose allocating
// insert variants use a plain, non-pooled allocation that cannot fail.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Head returns the list's first node, or nil if the list is empty. This is
// a raw structural load: it returns the head even if the head node has
// been logically removed.
func (l *List[T]) Head() *Node[T] { return l.head.Load() }

// Tail returns the list's last node, or nil if the list is empty. Raw
// structural load, same caveat as Head.
func (l *List[T]) Tail() *Node[T] { return l.tail.Load() }
