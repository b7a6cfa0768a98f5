package lfl

import (
	"cmp"
	"slices"
)

// MoveBefore detaches node from its current position and splices it
// immediately before anchor. node and anchor must both already be in l,
// and must be distinct.
//
// This, like MoveAfter and the sort functions below, is a single-threaded
// utility operation: it assumes quiescence on the affected region of the
// list. It is not safe to call concurrently with any other mutation that
// touches node, anchor, or their neighbors.
func (l *List[T]) MoveBefore(anchor, node *Node[T]) {
	if anchor == node {
		return
	}
	l.unlinkForMove(node)
	l.spliceBefore(anchor, node)
}

// MoveAfter detaches node from its current position and splices it
// immediately after anchor. Same quiescent-use contract as MoveBefore.
func (l *List[T]) MoveAfter(anchor, node *Node[T]) {
	if anchor == node {
		return
	}
	l.unlinkForMove(node)
	l.spliceAfter(anchor, node)
}

// unlinkForMove detaches n using the same link updates as Delete, but
// without freeing it. The node is reused immediately by the caller.
func (l *List[T]) unlinkForMove(n *Node[T]) {
	p := n.prev.Load()
	next := n.next.Load()

	if p != nil {
		p.next.Store(next)
	} else {
		l.head.Store(next)
	}

	if next != nil {
		next.prev.Store(p)
	} else {
		l.tail.Store(p)
	}

	n.next.Store(nil)
	n.prev.Store(nil)
}

func (l *List[T]) spliceBefore(anchor, n *Node[T]) {
	before := anchor.prev.Load()

	n.prev.Store(before)
	n.next.Store(anchor)
	anchor.prev.Store(n)

	if before != nil {
		before.next.Store(n)
	} else {
		l.head.Store(n)
	}
}

func (l *List[T]) spliceAfter(anchor, n *Node[T]) {
	after := anchor.next.Load()

	n.prev.Store(anchor)
	n.next.Store(after)
	anchor.next.Store(n)

	if after != nil {
		after.prev.Store(n)
	} else {
		l.tail.Store(n)
	}
}

// SortAsc stably reorders l's nodes in ascending order of get(node.Value),
// under the same quiescent-use contract as MoveBefore/MoveAfter. It
// collects the current nodes, stable-sorts them with slices.SortStableFunc
// and cmp.Compare, and relinks them in the resulting order.
func SortAsc[T any, F cmp.Ordered](l *List[T], get func(T) F) {
	sortList(l, get, false)
}

// SortDesc is SortAsc in descending order.
func SortDesc[T any, F cmp.Ordered](l *List[T], get func(T) F) {
	sortList(l, get, true)
}

func sortList[T any, F cmp.Ordered](l *List[T], get func(T) F, desc bool) {
	nodes := make([]*Node[T], 0)
	for cursor := l.head.Load(); cursor != nil; cursor = cursor.next.Load() {
		nodes = append(nodes, cursor)
	}
	if len(nodes) < 2 {
		return
	}

	slices.SortStableFunc(nodes, func(a, b *Node[T]) int {
		c := cmp.Compare(get(a.Value), get(b.Value))
		if desc {
			return -c
		}
		return c
	})

	relink(l, nodes)
}

func relink[T any](l *List[T], nodes []*Node[T]) {
	for i, n := range nodes {
		if i == 0 {
			n.prev.Store(nil)
			l.head.Store(n)
		} else {
			n.prev.Store(nodes[i-1])
		}
		if i == len(nodes)-1 {
			n.next.Store(nil)
			l.tail.Store(n)
		} else {
			n.next.Store(nodes[i+1])
		}
	}
}
