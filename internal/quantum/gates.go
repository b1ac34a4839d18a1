package quantum

import "math"

// Gate2 is a 2x2 unitary acting on a single qubit.
type Gate2 [2][2]complex128

// Gate4 is a 4x4 unitary acting on a control/target qubit pair.
type Gate4 [4][4]complex128

var invSqrt2 = complex(1/math.Sqrt2, 0)

// Named gate matrices. Initialized once at startup and read-only
// thereafter; callers must not mutate them.
var (
	Identity = &Gate2{{1, 0}, {0, 1}}
	PauliX   = &Gate2{{0, 1}, {1, 0}}
	PauliY   = &Gate2{{0, -1i}, {1i, 0}}
	PauliZ   = &Gate2{{1, 0}, {0, -1}}
	Hadamard = &Gate2{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	Phase    = &Gate2{{1, 0}, {0, 1i}}

	CNOT = &Gate4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	CPhase = &Gate4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, -1},
	}
)
