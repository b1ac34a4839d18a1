package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	// normEpsilon guards normalization: vectors with a smaller L2 norm
	// are degenerate and cannot represent a state.
	normEpsilon = 1e-10

	// pruneEpsilon is the near-zero cutoff. Amplitude groups whose
	// combined magnitude falls below it are skipped during gate
	// application, and terms below it are omitted from rendering.
	pruneEpsilon = 1e-8

	// closeEpsilon is the elementwise tolerance for state comparison.
	closeEpsilon = 1e-5
)

// Register is an n-qubit pure state: 2^n complex amplitudes indexed by
// computational basis state. The squared magnitudes always sum to 1
// within normEpsilon.
type Register struct {
	amps   []complex128
	qubits int
	pool   *bufferPool
}

// New builds a register from a literal amplitude vector. The input is
// copied and normalized; its length must be a positive power of two.
func New(amps []complex128) (*Register, error) {
	n := len(amps)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	qubits, err := QubitCount(n)
	if err != nil {
		return nil, err
	}
	r := &Register{
		amps:   append([]complex128(nil), amps...),
		qubits: qubits,
	}
	if err := r.Normalize(); err != nil {
		return nil, err
	}
	return r, nil
}

// Zero returns the all-zero basis state |0...0> on n qubits.
func Zero(n int) *Register {
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &Register{amps: amps, qubits: n}
}

// Qubits returns the number of qubits in the register.
func (r *Register) Qubits() int { return r.qubits }

// Len returns the length of the amplitude vector, 2^Qubits().
func (r *Register) Len() int { return len(r.amps) }

// Amplitudes returns a copy of the amplitude vector.
func (r *Register) Amplitudes() []complex128 {
	return append([]complex128(nil), r.amps...)
}

// Clone returns an independently owned copy of the register. The clone
// shares the buffer pool, which is safe for concurrent use.
func (r *Register) Clone() *Register {
	return &Register{amps: r.Amplitudes(), qubits: r.qubits, pool: r.pool}
}

// Norm returns the L2 norm of the amplitude vector.
func (r *Register) Norm() float64 {
	sum := 0.0
	for _, a := range r.amps {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}
	return math.Sqrt(sum)
}

// Normalize scales the amplitudes to unit L2 norm. It is called after
// construction and after every measurement collapse; it is the single
// guard of the unit-norm invariant.
func (r *Register) Normalize() error {
	norm := r.Norm()
	if norm <= normEpsilon {
		return fmt.Errorf("%w: norm %g", ErrDegenerateState, norm)
	}
	inv := complex(1/norm, 0)
	for i := range r.amps {
		r.amps[i] *= inv
	}
	return nil
}

// Probabilities returns |amp|^2 for every basis state.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, a := range r.amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}
	return probs
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal outcome distribution for each
// qubit position.
func (r *Register) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, r.qubits)
	for i, a := range r.amps {
		p := real(a)*real(a) + imag(a)*imag(a)
		for q := 0; q < r.qubits; q++ {
			if (i>>q)&1 == 1 {
				probs[q].Prob1 += p
			} else {
				probs[q].Prob0 += p
			}
		}
	}
	return probs
}

// Close reports whether the two states agree elementwise within 1e-5.
func (r *Register) Close(other *Register) bool {
	if len(r.amps) != len(other.amps) {
		return false
	}
	for i, a := range r.amps {
		if cmplx.Abs(a-other.amps[i]) >= closeEpsilon {
			return false
		}
	}
	return true
}

// CloseToReals reports whether the state agrees elementwise with a real
// amplitude vector within 1e-5.
func (r *Register) CloseToReals(vals []float64) bool {
	if len(r.amps) != len(vals) {
		return false
	}
	for i, a := range r.amps {
		if cmplx.Abs(a-complex(vals[i], 0)) >= closeEpsilon {
			return false
		}
	}
	return true
}
