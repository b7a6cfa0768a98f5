package lfl

import "github.com/puzpuzpuz/xsync/v2"

// Registry is a concurrent, name-keyed collection of independent lists,
// for a program that runs one queue per worker, shard, or topic rather
// than a single global list.
//
// The zero value is not ready to use; construct with NewRegistry.
type Registry[T any] struct {
	lists *xsync.MapOf[string, *List[T]]
	opts  []Option[T]
}

// NewRegistry creates an empty registry. opts are applied to every list
// the registry creates on first access via Get.
func NewRegistry[T any](opts ...Option[T]) *Registry[T] {
	return &Registry[T]{
		lists: xsync.NewMapOf[*List[T]](),
		opts:  opts,
	}
}

// Get returns the list registered under name, creating it (with the
// registry's options) on first access. Every subsequent call with the
// same name returns the identical *List[T], even under concurrent
// first-access races: only one goroutine's list survives such a race, and
// all callers observe that same survivor.
func (r *Registry[T]) Get(name string) *List[T] {
	if l, ok := r.lists.Load(name); ok {
		return l
	}
	l, _ := r.lists.LoadOrStore(name, New[T](r.opts...))
	return l
}

// Delete removes name's list from the registry. It does not clear or
// otherwise touch the list itself. Callers that need the list's nodes
// freed should call Clear or Sweep on it first.
func (r *Registry[T]) Delete(name string) {
	r.lists.Delete(name)
}

// Len returns the number of lists currently registered.
func (r *Registry[T]) Len() int {
	return r.lists.Size()
}

// Range calls f for each registered name and list, in no particular
// order, until f returns false.
func (r *Registry[T]) Range(f func(name string, l *List[T]) bool) {
	r.lists.Range(f)
}
