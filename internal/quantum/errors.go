package quantum

import "errors"

// Precondition failures. All are detected before any mutation, so a
// failing call leaves the register unchanged.
var (
	ErrInvalidLength   = errors.New("amplitude vector length must be a positive power of two")
	ErrDegenerateState = errors.New("cannot normalize near-zero state vector")
	ErrQubitOutOfRange = errors.New("qubit index out of range")
	ErrSameQubit       = errors.New("control and target must be different qubits")
	ErrLengthMismatch  = errors.New("state vector lengths differ")
)
