package compute

// Backend runs a unit of work over a partition of the index range [0, n).
// Run must call fn with non-overlapping [lo, hi) chunks that cover the
// full range, and must not return before every chunk has finished.
type Backend interface {
	Name() string
	Available() bool
	Run(n int, fn func(lo, hi int))
	Cleanup()
}

var activeBackend Backend

func init() {
	activeBackend = AutoSelectBackend()
}

func SetBackend(b Backend) {
	if activeBackend != nil {
		activeBackend.Cleanup()
	}
	activeBackend = b
}

func GetBackend() Backend {
	return activeBackend
}

func AutoSelectBackend() Backend {
	return NewCPUBackend()
}
