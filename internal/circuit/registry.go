package circuit

import (
	"sort"

	"github.com/rpmuller/vecsim/internal/quantum"
)

var singleQubitGates = map[string]*quantum.Gate2{
	"i": quantum.Identity,
	"x": quantum.PauliX,
	"y": quantum.PauliY,
	"z": quantum.PauliZ,
	"h": quantum.Hadamard,
	"s": quantum.Phase,
}

var twoQubitGates = map[string]*quantum.Gate4{
	"cnot":   quantum.CNOT,
	"cx":     quantum.CNOT,
	"cphase": quantum.CPhase,
	"cz":     quantum.CPhase,
}

// GateNames returns every recognized gate name, sorted.
func GateNames() []string {
	names := make([]string, 0, len(singleQubitGates)+len(twoQubitGates))
	for name := range singleQubitGates {
		names = append(names, name)
	}
	for name := range twoQubitGates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsTwoQubit reports whether the named gate takes a control qubit.
func IsTwoQubit(name string) bool {
	_, ok := twoQubitGates[name]
	return ok
}

// KnownGate reports whether the name resolves to a gate matrix.
func KnownGate(name string) bool {
	if _, ok := singleQubitGates[name]; ok {
		return true
	}
	return IsTwoQubit(name)
}
