package quantum

import "fmt"

// Sum builds the normalized superposition (a + b)/sqrt(2) as a fresh
// register. The operands must have equal length and are not mutated.
func Sum(a, b *Register) (*Register, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	v := make([]complex128, a.Len())
	for i := range v {
		v[i] = (a.amps[i] + b.amps[i]) * invSqrt2
	}
	return New(v)
}

// Difference builds the normalized superposition (a - b)/sqrt(2) as a
// fresh register. The operands must have equal length and are not mutated.
func Difference(a, b *Register) (*Register, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	v := make([]complex128, a.Len())
	for i := range v {
		v[i] = (a.amps[i] - b.amps[i]) * invSqrt2
	}
	return New(v)
}

// Tensor builds the tensor product of two registers: a state over the
// concatenated qubit positions, with a's qubits in the high bits. The
// operands are not mutated.
func Tensor(a, b *Register) (*Register, error) {
	lb := b.Len()
	v := make([]complex128, a.Len()*lb)
	for i, ai := range a.amps {
		for j, bj := range b.amps {
			v[i*lb+j] = ai * bj
		}
	}
	return New(v)
}
