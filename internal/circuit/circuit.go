// Package circuit represents gate programs and runs them against a
// quantum register.
package circuit

import (
	"fmt"

	"github.com/rpmuller/vecsim/internal/ket"
	"github.com/rpmuller/vecsim/internal/quantum"
)

// Op is one gate application. Control is ignored for single-qubit gates.
type Op struct {
	Gate    string
	Target  int
	Control int
}

// Circuit is an initial basis state plus a gate sequence.
type Circuit struct {
	Name    string
	Initial string
	Ops     []Op
}

// Qubits returns the width of the circuit's initial state.
func (c *Circuit) Qubits() int { return len(c.Initial) }

// InitialState builds the register the circuit starts from.
func (c *Circuit) InitialState() (*quantum.Register, error) {
	return ket.Parse(c.Initial)
}

// Run applies the circuit's ops in order to a fresh initial register and
// returns the final state.
func (c *Circuit) Run() (*quantum.Register, error) {
	reg, err := c.InitialState()
	if err != nil {
		return nil, err
	}
	if err := Apply(reg, c.Ops); err != nil {
		return nil, err
	}
	return reg, nil
}

// Apply runs a gate sequence against an existing register in place.
func Apply(reg *quantum.Register, ops []Op) error {
	for i, op := range ops {
		if err := applyOp(reg, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Gate, err)
		}
	}
	return nil
}

func applyOp(reg *quantum.Register, op Op) error {
	if g, ok := singleQubitGates[op.Gate]; ok {
		return reg.Apply1(g, op.Target)
	}
	if g, ok := twoQubitGates[op.Gate]; ok {
		return reg.Apply2(g, op.Control, op.Target)
	}
	return fmt.Errorf("unknown gate %q", op.Gate)
}
