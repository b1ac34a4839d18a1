package quantum

import (
	"fmt"
	"math/rand"
)

// Measure samples the given qubit `times` times, collapsing the state
// after each draw. Repetitions are sequential because each draw depends
// on the state collapsed by the previous one; once a qubit has been
// measured, further measurements of it repeat the first outcome until a
// gate touches the state again.
func (r *Register) Measure(qubit, times int, rng *rand.Rand) ([]int, error) {
	if qubit < 0 || qubit >= r.qubits {
		return nil, fmt.Errorf("%w: qubit %d, register has %d qubits", ErrQubitOutOfRange, qubit, r.qubits)
	}
	outcomes := make([]int, 0, times)
	for t := 0; t < times; t++ {
		prob0 := 0.0
		for i, a := range r.amps {
			if (i>>qubit)&1 == 0 {
				prob0 += real(a)*real(a) + imag(a)*imag(a)
			}
		}

		outcome := 1
		if rng.Float64() < prob0 {
			outcome = 0
		}
		outcomes = append(outcomes, outcome)

		for i := range r.amps {
			if (i>>qubit)&1 != outcome {
				r.amps[i] = 0
			}
		}
		if err := r.Normalize(); err != nil {
			return outcomes, err
		}
	}
	return outcomes, nil
}
