package lfl

import "errors"

// ErrResourceExhausted is returned by the allocating insert variants
// (InsertHead, InsertTail) when the installed allocator fails. The list is
// left structurally unchanged. Empty and NotFound outcomes are not errors
// in this package: a pop on an empty list and a failed Find both return a
// plain nil node rather than an allocated error.
var ErrResourceExhausted = errors.New("lfl: resource exhausted")
