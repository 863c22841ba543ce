package ty

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLazy_ComputesOnce(t *testing.T) {
	calls := 0
	lazy := GetLazy(func() int {
		calls++
		return 42
	})

	assert.Equal(t, 42, lazy())
	assert.Equal(t, 42, lazy())
	assert.Equal(t, 1, calls)
}

func TestGetLazy_ConcurrentFirstUse(t *testing.T) {
	var calls atomic.Int32
	lazy := GetLazy(func() string {
		calls.Add(1)
		return "ready"
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ready", lazy())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
