package lfl

import "fmt"

// InsertTail allocates a node carrying value and publishes it at the back
// of the list. It returns ErrResourceExhausted (wrapped) if the list's
// allocator fails; the list is unchanged in that case.
func (l *List[T]) InsertTail(value T) (*Node[T], error) {
	n, err := l.alloc(value)
	if err != nil {
		return nil, fmt.Errorf("lfl: insert tail: %w: %w", ErrResourceExhausted, err)
	}
	l.InsertTailNode(n)
	return n, nil
}

// InsertTailNode publishes a caller-constructed, detached node at the back
// of the list. n must not already belong to a list. InsertTailNode clears
// n's next link and removed flag before publishing it.
//
// Protocol: load tail; if the list is empty, CAS head from nil to n and
// then publish tail; otherwise CAS the current tail's next pointer from
// nil to n, set n's prev to the old tail, and CAS tail from the old tail
// to n, tolerating failure since a concurrent inserter may have already
// advanced it. Retries on CAS failure in either branch.
func (l *List[T]) InsertTailNode(n *Node[T]) {
	n.next.Store(nil)
	n.removed.Store(false)

	for {
		oldTail := l.tail.Load()

		if oldTail == nil {
			if l.head.CompareAndSwap(nil, n) {
				n.prev.Store(nil)
				l.tail.Store(n)
				return
			}
			continue
		}

		if oldTail.next.CompareAndSwap(nil, n) {
			n.prev.Store(oldTail)
			l.tail.CompareAndSwap(oldTail, n)
			return
		}
	}
}

// InsertHead allocates a node carrying value and publishes it at the front
// of the list. It returns ErrResourceExhausted (wrapped) if the list's
// allocator fails; the list is unchanged in that case.
func (l *List[T]) InsertHead(value T) (*Node[T], error) {
	n, err := l.alloc(value)
	if err != nil {
		return nil, fmt.Errorf("lfl: insert head: %w: %w", ErrResourceExhausted, err)
	}
	l.InsertHeadNode(n)
	return n, nil
}

// InsertHeadNode publishes a caller-constructed, detached node at the
// front of the list. n must not already belong to a list. InsertHeadNode
// clears n's removed flag before publishing it.
//
// Protocol: load head, link n.next to it, CAS head from the old head to
// n, retrying on failure. On success, link the old head's prev back to
// n, or if the list was empty, publish n as the new tail.
func (l *List[T]) InsertHeadNode(n *Node[T]) {
	n.removed.Store(false)

	for {
		oldHead := l.head.Load()
		n.next.Store(oldHead)
		n.prev.Store(nil)

		if l.head.CompareAndSwap(oldHead, n) {
			if oldHead != nil {
				oldHead.prev.Store(n)
			} else {
				l.tail.Store(n)
			}
			return
		}
	}
}
