/*
Package lfl implements a concurrent doubly-linked list: non-blocking
publication at head or tail, logical removal, live iteration that tolerates
concurrent mutation, and deferred reclamation gated by an external reference
count.

The list is built for high-throughput work queues where producers, live
iterators, and a reclaiming sweeper run on separate goroutines without a
shared mutex. It is not a strictly linearizable lock-free queue and it is
not wait-free: tail insertion is a two-step CAS rather than a single atomic
operation, and pop_tail/sweep retry on contention without backoff. See the
per-file comments for the concurrency protocol each operation implements.

Reclamation of a logically-removed node is deferred until Sweep observes a
zero refcount, because Sweep is the only point that decides "safe to free";
mark-as-removed must stay cheap and callable while other goroutines hold a
reference. The package never enforces the refcount discipline itself. It
is the caller's responsibility to increment before dereferencing a node
across a yield point and decrement when done.
*/
package lfl
