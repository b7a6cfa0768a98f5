package lfl

// Sweep traverses the list from head and frees every node that is both
// logically removed and holds a zero refcount, invoking cleanup (if
// non-nil) on each before freeing it. Sweep never frees a node with a
// non-zero refcount or with Removed() false.
//
// This is the only path that may free a node while other goroutines could
// plausibly still hold a reference to it. Mark-as-removed intentionally
// does not free anything, so that it stays cheap and callable while other
// goroutines hold references. Sweep is the single point that decides
// "safe to free" by consulting the refcount.
//
// Protocol: maintain a trailing prev cursor; for each node, load
// next/removed/refcount; if eligible, CAS prev's next (or head, if prev is
// nil) from the current node to next. On success, CAS next's prev (or
// tail, if next is nil) from the current node to prev, free the node, and
// advance the cursor without moving prev. On CAS failure, meaning the
// structure changed underneath, restart the walk from head with prev
// reset to nil, rather than trying to patch up the local state.
//
// cleanup's panics and errors are the caller's responsibility; Sweep does
// not recover them.
func (l *List[T]) Sweep(cleanup func(*Node[T])) {
	var prev *Node[T]
	curr := l.head.Load()

	for curr != nil {
		next := curr.next.Load()
		removed := curr.removed.Load()
		refs := curr.refcount.Load()

		if removed && refs == 0 {
			var unlinked bool
			if prev != nil {
				unlinked = prev.next.CompareAndSwap(curr, next)
			} else {
				unlinked = l.head.CompareAndSwap(curr, next)
			}

			if !unlinked {
				prev = nil
				curr = l.head.Load()
				continue
			}

			// Relink the successor side too, so a swept tail does not
			// leave tail pointing at a freed node.
			if next != nil {
				next.prev.CompareAndSwap(curr, prev)
			} else {
				l.tail.CompareAndSwap(curr, prev)
			}

			if cleanup != nil {
				cleanup(curr)
			}
			l.free(curr)

			curr = next
			continue
		}

		prev = curr
		curr = next
	}
}

// Clear unconditionally frees every node in the list, live or removed,
// without consulting refcount or invoking any cleanup. Callers must
// ensure no other goroutine holds a reference to any node in the list
// before calling Clear. It is an unconditional, immediate reclamation
// path like Delete and PopHead/PopTail, not a deferred one like Sweep.
func (l *List[T]) Clear() {
	cursor := l.head.Load()
	for cursor != nil {
		next := cursor.next.Load()
		cursor.next.Store(nil)
		cursor.prev.Store(nil)
		l.free(cursor)
		cursor = next
	}
	l.head.Store(nil)
	l.tail.Store(nil)
}
