package circuit

import (
	"sort"
	"strings"
)

// Bell prepares (|00> + |11>)/sqrt(2): Hadamard on qubit 0, then CNOT
// with qubit 0 controlling qubit 1.
func Bell() *Circuit {
	return &Circuit{
		Name:    "bell",
		Initial: "00",
		Ops: []Op{
			{Gate: "h", Target: 0},
			{Gate: "cnot", Control: 0, Target: 1},
		},
	}
}

// GHZ prepares (|0...0> + |1...1>)/sqrt(2) on n qubits: Hadamard on
// qubit 0 followed by a CNOT chain.
func GHZ(n int) *Circuit {
	ops := []Op{{Gate: "h", Target: 0}}
	for i := 0; i < n-1; i++ {
		ops = append(ops, Op{Gate: "cnot", Control: i, Target: i + 1})
	}
	return &Circuit{
		Name:    "ghz",
		Initial: strings.Repeat("0", n),
		Ops:     ops,
	}
}

var presets = map[string]func() *Circuit{
	"bell": Bell,
	"ghz3": func() *Circuit { return GHZ(3) },
	"ghz4": func() *Circuit { return GHZ(4) },
}

// GetPreset returns a named preset circuit, or nil when unknown.
func GetPreset(name string) *Circuit {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
