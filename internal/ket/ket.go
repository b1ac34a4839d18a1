// Package ket builds quantum registers from short basis-state strings.
package ket

import (
	"fmt"
	"math"

	"github.com/rpmuller/vecsim/internal/quantum"
)

var invSqrt2 = complex(1/math.Sqrt2, 0)

// single-qubit building blocks for each spec character
var basisVectors = map[rune][]complex128{
	'0': {1, 0},
	'1': {0, 1},
	'+': {invSqrt2, invSqrt2},
	'-': {invSqrt2, -invSqrt2},
}

// Parse builds a register from a basis-state specification, one character
// per qubit: '0', '1', '+' or '-'. The leftmost character is the highest
// qubit position, so Parse("10") sets qubit 1 and clears qubit 0.
func Parse(spec string) (*quantum.Register, error) {
	if spec == "" {
		return nil, fmt.Errorf("ket spec cannot be empty")
	}

	register := []complex128{1}
	for i := len(spec) - 1; i >= 0; i-- {
		q, ok := basisVectors[rune(spec[i])]
		if !ok {
			return nil, fmt.Errorf("invalid character %q in ket spec %q (valid: 0, 1, +, -)", spec[i], spec)
		}
		register = kron(q, register)
	}
	return quantum.New(register)
}

// MustParse is Parse for statically known specs; it panics on error.
func MustParse(spec string) *quantum.Register {
	r, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return r
}

func kron(a, b []complex128) []complex128 {
	out := make([]complex128, len(a)*len(b))
	for i, ai := range a {
		for j, bj := range b {
			out[i*len(b)+j] = ai * bj
		}
	}
	return out
}
