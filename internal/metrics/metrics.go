// Package metrics computes summary statistics of quantum states.
package metrics

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/rpmuller/vecsim/internal/quantum"
)

// Entropy returns the Shannon entropy, in bits, of the basis-state
// probability distribution. A basis state has entropy 0; a uniform
// superposition over 2^n states has entropy n.
func Entropy(r *quantum.Register) float64 {
	h := 0.0
	for _, p := range r.Probabilities() {
		if p > 1e-12 {
			h -= p * math.Log2(p)
		}
	}
	return h
}

// Fidelity returns |<a|b>|^2, the probability that state a would be
// observed as state b. Identical states give 1, orthogonal states 0.
func Fidelity(a, b *quantum.Register) (float64, error) {
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: %d vs %d", quantum.ErrLengthMismatch, a.Len(), b.Len())
	}
	aa, ba := a.Amplitudes(), b.Amplitudes()
	var ip complex128
	for i := range aa {
		ip += cmplx.Conj(aa[i]) * ba[i]
	}
	return real(ip)*real(ip) + imag(ip)*imag(ip), nil
}
