package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
	"strings"
)

// roundSigfigs rounds x to n significant figures. Rendering rounds before
// formatting to keep textual output stable across platforms; the rounding
// itself is part of the output contract, not just a tolerance.
func roundSigfigs(x float64, n int) float64 {
	if x == 0 {
		return 0
	}
	d := math.Ceil(math.Log10(math.Abs(x)))
	power := math.Pow(10, float64(n)-d)
	return math.Round(x*power) / power
}

// formatReal renders a float rounded to 15 significant figures, always
// with a decimal point.
func formatReal(x float64) string {
	s := strconv.FormatFloat(roundSigfigs(x, 15), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// coefficient renders a complex amplitude: the real part alone when the
// rounded imaginary magnitude is below the pruning threshold, otherwise
// "re+imi".
func coefficient(a complex128) string {
	re := roundSigfigs(real(a), 15)
	im := roundSigfigs(imag(a), 15)
	if math.Abs(im) < pruneEpsilon {
		return formatReal(re)
	}
	return formatReal(re) + "+" + formatReal(im) + "i"
}

func term(i int, a complex128, qubits int) string {
	return fmt.Sprintf("%s|%0*b>", coefficient(a), qubits, i)
}

// Terms renders every amplitude with magnitude above the pruning
// threshold as "coef|binary>", space-joined in index order with the most
// significant qubit first.
func (r *Register) Terms() string {
	parts := make([]string, 0, len(r.amps))
	for i, a := range r.amps {
		if cmplx.Abs(a) > pruneEpsilon {
			parts = append(parts, term(i, a, r.qubits))
		}
	}
	return strings.Join(parts, " ")
}

func (r *Register) String() string {
	return r.Terms()
}
