package lfl

// Delete unlinks a specific, known-live node and frees it (returning it to
// the pool if one is installed).
//
// Precondition (undefined behavior if violated): the caller must ensure no
// other goroutine is concurrently mutating either neighbor of n, e.g. n
// was just popped or just inserted by the calling goroutine, or the
// application serializes structural mutation of this region itself. Under
// that precondition a single, non-retried CAS per link is sufficient; a
// failed CAS is tolerated as evidence that a concurrent operation already
// adjusted the link, not retried, which is what makes Delete O(1) rather
// than a retry loop.
func (l *List[T]) Delete(n *Node[T]) {
	p := n.prev.Load()
	next := n.next.Load()

	if p != nil {
		p.next.CompareAndSwap(n, next)
	} else {
		l.head.CompareAndSwap(n, next)
	}

	if next != nil {
		next.prev.CompareAndSwap(n, p)
	} else {
		l.tail.CompareAndSwap(n, p)
	}

	l.free(n)
}

// PopHead atomically removes and returns the list's first node, or nil if
// the list is empty. The returned node is not freed. It is detached (its
// Next/Prev are cleared) and owned by the caller, who may reinsert it,
// inspect it, or explicitly discard it.
func (l *List[T]) PopHead() *Node[T] {
	for {
		head := l.head.Load()
		if head == nil {
			return nil
		}

		next := head.next.Load()
		if l.head.CompareAndSwap(head, next) {
			if next == nil {
				l.tail.Store(nil)
			} else {
				next.prev.Store(nil)
			}
			head.next.Store(nil)
			head.prev.Store(nil)
			return head
		}
	}
}

// PopTail atomically removes and returns the list's last node, or nil if
// the list is empty.
//
// Unlike PopHead, this is an O(n) operation: the predecessor of the
// current tail is located by walking from head, not through the tail's
// Prev link. Under contention with another structural mutation, PopTail
// reloads the tail and walks again from head. The list is not designed for
// high-throughput tail pops; callers with that requirement should prefer
// PopHead with the list built head-to-tail in the opposite order.
func (l *List[T]) PopTail() *Node[T] {
	for {
		tail := l.tail.Load()
		if tail == nil {
			return nil
		}

		var prev *Node[T]
		cursor := l.head.Load()
		for cursor != nil && cursor != tail {
			prev = cursor
			cursor = cursor.next.Load()
		}
		if cursor != tail {
			// The tail changed underneath us; restart.
			continue
		}

		if prev != nil {
			if !l.tail.CompareAndSwap(tail, prev) {
				continue
			}
			prev.next.Store(nil)
		} else {
			if !l.head.CompareAndSwap(tail, nil) {
				continue
			}
			l.tail.Store(nil)
		}

		tail.next.Store(nil)
		tail.prev.Store(nil)
		return tail
	}
}
