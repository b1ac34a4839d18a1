package quantum

import (
	"fmt"
	"math/bits"
)

// QubitCount returns the number of qubits addressed by a state vector of
// the given length, i.e. floor(log2(length)). Callers are responsible for
// enforcing that the length is an exact power of two.
func QubitCount(length int) (int, error) {
	if length <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	return bits.Len(uint(length)) - 1, nil
}

// FlipBit returns index i with bit position b inverted. Every pair and
// quadruple partition used by gate application is built from this.
func FlipBit(i, b int) int {
	return i ^ (1 << b)
}
