package ty

import "sync"

// Lazy is a function that returns a value of type T, computing it only once.
type Lazy[T any] func() T

// GetLazy returns a Lazy function that memoizes the result of the provided
// function. The returned function is safe for concurrent use: compute runs
// exactly once even when the first calls race, and later calls return the
// cached value.
func GetLazy[T any](compute func() T) Lazy[T] {
	var (
		once  sync.Once
		cache T
	)
	return func() T {
		once.Do(func() {
			cache = compute()
		})
		return cache
	}
}
