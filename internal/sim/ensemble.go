package sim

import (
	"context"
	"math/rand"
	"sync"

	"github.com/rpmuller/vecsim/internal/circuit"
)

// Ensemble measures a qubit across independent preparations of the same
// circuit. Each run rebuilds the state from scratch, so the outcomes
// sample the Born distribution of the pre-measurement state instead of
// the collapse-then-repeat behavior of Register.Measure.
type Ensemble struct {
	circ      *circuit.Circuit
	qubit     int
	numRuns   int
	seedStart int64
}

func NewEnsemble(c *circuit.Circuit, qubit, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{circ: c, qubit: qubit, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]int, error) {
	outcomes := make([]int, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			reg, err := e.circ.Run()
			if err != nil {
				errs[idx] = err
				return
			}

			rng := rand.New(rand.NewSource(e.seedStart + int64(idx)))
			results, err := reg.Measure(e.qubit, 1, rng)
			if err != nil {
				errs[idx] = err
				return
			}
			outcomes[idx] = results[0]
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return outcomes, nil
}

// Counts tallies outcomes into a bitstring histogram keyed "0"/"1".
func Counts(outcomes []int) map[string]int {
	counts := make(map[string]int)
	for _, o := range outcomes {
		if o == 0 {
			counts["0"]++
		} else {
			counts["1"]++
		}
	}
	return counts
}
