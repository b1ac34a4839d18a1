package quantum

import (
	"fmt"
	"math/cmplx"

	"github.com/rpmuller/vecsim/internal/compute"
)

// Apply1 applies a 2x2 unitary to the target qubit, mutating the register
// in place.
//
// The index range splits into disjoint pairs {i, FlipBit(i, target)}; the
// smaller index of each pair is canonical and performs the update, the
// larger is a no-op. Updates read the old amplitude vector and write a
// fresh one, so the parallel phase shares the old buffer read-only and
// every new-buffer element has exactly one writer. The buffers are
// swapped after the join.
func (r *Register) Apply1(m *Gate2, target int) error {
	if target < 0 || target >= r.qubits {
		return fmt.Errorf("%w: target %d, register has %d qubits", ErrQubitOutOfRange, target, r.qubits)
	}
	m00, m01 := m[0][0], m[0][1]
	m10, m11 := m[1][0], m[1][1]
	src := r.amps
	dst := r.scratch()
	compute.GetBackend().Run(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			j := FlipBit(i, target)
			if i > j {
				continue
			}
			qi, qj := src[i], src[j]
			if cmplx.Abs(qi)+cmplx.Abs(qj) < pruneEpsilon {
				dst[i], dst[j] = qi, qj
				continue
			}
			dst[i] = m00*qi + m01*qj
			dst[j] = m10*qi + m11*qj
		}
	})
	r.amps = dst
	r.recycle(src)
	return nil
}

// Apply2 applies a 4x4 unitary to the (control, target) qubit pair,
// mutating the register in place.
//
// The two bit positions split the index range into disjoint quadruples
// {i, j=FlipBit(i,target), k=FlipBit(i,control), l=FlipBit(j,control)}.
// An index is canonical only when it is the quadruple minimum, which
// i <= j and i <= k establish. Buffering as in Apply1.
func (r *Register) Apply2(m *Gate4, control, target int) error {
	if control < 0 || control >= r.qubits {
		return fmt.Errorf("%w: control %d, register has %d qubits", ErrQubitOutOfRange, control, r.qubits)
	}
	if target < 0 || target >= r.qubits {
		return fmt.Errorf("%w: target %d, register has %d qubits", ErrQubitOutOfRange, target, r.qubits)
	}
	if control == target {
		return fmt.Errorf("%w: qubit %d", ErrSameQubit, control)
	}
	src := r.amps
	dst := r.scratch()
	compute.GetBackend().Run(len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			j := FlipBit(i, target)
			if i > j {
				continue
			}
			k := FlipBit(i, control)
			if i > k {
				continue
			}
			l := FlipBit(j, control)

			qi, qj, qk, ql := src[i], src[j], src[k], src[l]
			if cmplx.Abs(qi)+cmplx.Abs(qj)+cmplx.Abs(qk)+cmplx.Abs(ql) < pruneEpsilon {
				dst[i], dst[j], dst[k], dst[l] = qi, qj, qk, ql
				continue
			}
			dst[i] = m[0][0]*qi + m[0][1]*qj + m[0][2]*qk + m[0][3]*ql
			dst[j] = m[1][0]*qi + m[1][1]*qj + m[1][2]*qk + m[1][3]*ql
			dst[k] = m[2][0]*qi + m[2][1]*qj + m[2][2]*qk + m[2][3]*ql
			dst[l] = m[3][0]*qi + m[3][1]*qj + m[3][2]*qk + m[3][3]*ql
		}
	})
	r.amps = dst
	r.recycle(src)
	return nil
}
