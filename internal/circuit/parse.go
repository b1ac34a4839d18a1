package circuit

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOps parses a comma-separated gate program such as
// "h 0, cnot 0 1". Each entry is a gate name followed by its qubit
// arguments: one target for single-qubit gates, control then target for
// two-qubit gates.
func ParseOps(program string) ([]Op, error) {
	var ops []Op
	for _, entry := range strings.Split(program, ",") {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}

		name := strings.ToLower(fields[0])
		if !KnownGate(name) {
			return nil, fmt.Errorf("unknown gate %q (valid: %s)", fields[0], strings.Join(GateNames(), ", "))
		}

		args := make([]int, 0, 2)
		for _, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gate %q: bad qubit index %q", name, f)
			}
			args = append(args, v)
		}

		if IsTwoQubit(name) {
			if len(args) != 2 {
				return nil, fmt.Errorf("gate %q needs control and target, got %d args", name, len(args))
			}
			ops = append(ops, Op{Gate: name, Control: args[0], Target: args[1]})
			continue
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("gate %q needs one target, got %d args", name, len(args))
		}
		ops = append(ops, Op{Gate: name, Target: args[0]})
	}
	return ops, nil
}
