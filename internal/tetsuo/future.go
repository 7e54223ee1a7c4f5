package tetsuo

import (
	"github.com/Faultbox/tetsuo/internal/assets"
)

// Future is a one-shot result produced by a background goroutine and
// consumed by the render loop without blocking.
type Future[T any] struct {
	ch   <-chan assets.Result[T]
	done bool
}

// NewFuture wraps a channel that yields at most one result.
func NewFuture[T any](ch <-chan assets.Result[T]) *Future[T] {
	return &Future[T]{ch: ch}
}

// Poll returns the result once it is available. ok is true exactly once;
// every later call, and every call before the result arrives, returns false.
// A channel closed without a result resolves with ErrNoResult.
func (f *Future[T]) Poll() (res assets.Result[T], ok bool) {
	if f == nil || f.done {
		return res, false
	}
	select {
	case r, open := <-f.ch:
		f.done = true
		if !open {
			r.Err = ErrNoResult
		}
		return r, true
	default:
		return res, false
	}
}

// Done reports whether the result has been delivered.
func (f *Future[T]) Done() bool {
	return f == nil || f.done
}
