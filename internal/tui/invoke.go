package tui

import (
	"context"

	"github.com/MKhiriev/go-feed-reader/internal/utils"
)

type outcome[T any] struct {
	value T
	err   error
}

// await starts an asynchronous capability and blocks until its completion
// fires or ctx is done. The completion never blocks, even when it fires
// after await has returned.
func await[T any](ctx context.Context, start func(done func(T, error))) (T, error) {
	ch := make(chan outcome[T], 1)
	start(utils.OnceCompletion(func(v T, err error) {
		ch <- outcome[T]{value: v, err: err}
	}, nil))

	select {
	case o := <-ch:
		return o.value, o.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
