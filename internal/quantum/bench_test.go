package quantum

import "testing"

func benchRegister(n int) *Register {
	return Zero(n)
}

func BenchmarkApply1_10Qubits(b *testing.B) {
	r := benchRegister(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Apply1(Hadamard, 0)
	}
}

func BenchmarkApply1_18Qubits(b *testing.B) {
	r := benchRegister(18)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Apply1(Hadamard, 0)
	}
}

func BenchmarkApply2_10Qubits(b *testing.B) {
	r := benchRegister(10)
	r.Apply1(Hadamard, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Apply2(CNOT, 0, 1)
	}
}

func BenchmarkApply2_18Qubits(b *testing.B) {
	r := benchRegister(18)
	r.Apply1(Hadamard, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Apply2(CNOT, 0, 1)
	}
}

func BenchmarkGHZ_16Qubits(b *testing.B) {
	const n = 16
	for i := 0; i < b.N; i++ {
		r := benchRegister(n)
		r.Apply1(Hadamard, 0)
		for q := 0; q < n-1; q++ {
			r.Apply2(CNOT, q, q+1)
		}
	}
}
