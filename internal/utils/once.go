package utils

import "sync/atomic"

// OnceCompletion wraps a result callback so that only its first invocation
// reaches fn. Later invocations are dropped and reported to onRepeat, if set.
// A nil fn yields a callback that only guards.
func OnceCompletion[T any](fn func(T, error), onRepeat func()) func(T, error) {
	var fired atomic.Bool
	return func(v T, err error) {
		if !fired.CompareAndSwap(false, true) {
			if onRepeat != nil {
				onRepeat()
			}
			return
		}
		if fn != nil {
			fn(v, err)
		}
	}
}
