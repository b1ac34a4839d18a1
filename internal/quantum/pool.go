package quantum

import "sync"

// bufferPool recycles amplitude buffers of a single size. Every gate
// application writes into a fresh buffer and retires the old one, so
// long gate sequences on large registers would otherwise churn the
// allocator.
type bufferPool struct {
	pool sync.Pool
	size int
}

func newBufferPool(size int) *bufferPool {
	return &bufferPool{
		size: size,
		pool: sync.Pool{
			New: func() interface{} {
				return make([]complex128, size)
			},
		},
	}
}

func (p *bufferPool) Get() []complex128 {
	return p.pool.Get().([]complex128)
}

func (p *bufferPool) Put(b []complex128) {
	if len(b) == p.size {
		for i := range b {
			b[i] = 0
		}
		p.pool.Put(b)
	}
}

// scratch returns a zeroed buffer of the register's length, creating the
// pool on first use.
func (r *Register) scratch() []complex128 {
	if r.pool == nil {
		r.pool = newBufferPool(len(r.amps))
	}
	return r.pool.Get()
}

func (r *Register) recycle(b []complex128) {
	if r.pool != nil {
		r.pool.Put(b)
	}
}
