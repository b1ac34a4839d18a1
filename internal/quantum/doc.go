// Package quantum implements a dense state-vector simulator for pure
// quantum states.
//
// A [Register] holds 2^n complex amplitudes for an n-qubit system and is
// mutated in place by gate application and measurement:
//
//	reg, _ := quantum.New([]complex128{1, 0, 0, 0})
//	reg.Apply1(quantum.Hadamard, 0)
//	reg.Apply2(quantum.CNOT, 0, 1)
//	fmt.Println(reg) // 0.707106781186548|00> 0.707106781186548|11>
//
// Basis index convention: bit b of a basis index corresponds to qubit
// position b, with qubit 0 the least significant bit. Textual basis
// strings read most-significant qubit first, so "10" is the state with
// qubit 1 set and qubit 0 clear.
//
// Gate application fans out across the index range through the
// [internal/compute] backend and joins before returning; the register is
// never observable mid-update.
package quantum
