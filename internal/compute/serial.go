package compute

// SerialBackend runs every range as a single chunk on the calling
// goroutine. Useful when debugging gate kernels.
type SerialBackend struct{}

func NewSerialBackend() *SerialBackend { return &SerialBackend{} }

func (s *SerialBackend) Name() string    { return "serial" }
func (s *SerialBackend) Available() bool { return true }
func (s *SerialBackend) Cleanup()        {}

func (s *SerialBackend) Run(n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	fn(0, n)
}
