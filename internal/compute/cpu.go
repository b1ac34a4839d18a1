package compute

import (
	"runtime"
	"sync"
)

// serialThreshold is the range size below which the fork-join overhead
// outweighs the work; smaller ranges run on the calling goroutine.
const serialThreshold = 4096

type CPUBackend struct {
	workers int
}

func NewCPUBackend() *CPUBackend {
	return &CPUBackend{
		workers: runtime.NumCPU(),
	}
}

func (c *CPUBackend) Name() string    { return "cpu" }
func (c *CPUBackend) Available() bool { return true }
func (c *CPUBackend) Cleanup()        {}

func (c *CPUBackend) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if n < serialThreshold || c.workers < 2 {
		fn(0, n)
		return
	}

	var wg sync.WaitGroup
	chunk := (n + c.workers - 1) / c.workers

	for w := 0; w < c.workers; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}

	wg.Wait()
}
