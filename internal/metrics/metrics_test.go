package metrics

import (
	"math"
	"testing"

	"github.com/rpmuller/vecsim/internal/ket"
	"github.com/rpmuller/vecsim/internal/quantum"
)

func TestEntropyBasisState(t *testing.T) {
	if h := Entropy(quantum.Zero(3)); math.Abs(h) > 1e-12 {
		t.Errorf("basis state entropy = %g, want 0", h)
	}
}

func TestEntropyUniform(t *testing.T) {
	reg := ket.MustParse("++")
	if h := Entropy(reg); math.Abs(h-2) > 1e-9 {
		t.Errorf("|++> entropy = %g, want 2", h)
	}
}

func TestEntropyBell(t *testing.T) {
	reg := quantum.Zero(2)
	if err := reg.Apply1(quantum.Hadamard, 0); err != nil {
		t.Fatal(err)
	}
	if err := reg.Apply2(quantum.CNOT, 0, 1); err != nil {
		t.Fatal(err)
	}
	if h := Entropy(reg); math.Abs(h-1) > 1e-9 {
		t.Errorf("bell state entropy = %g, want 1", h)
	}
}

func TestFidelity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical", "01", "01", 1},
		{"orthogonal", "0", "1", 0},
		{"plus vs zero", "+", "0", 0.5},
		{"plus vs minus", "+", "-", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Fidelity(ket.MustParse(tt.a), ket.MustParse(tt.b))
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(f-tt.expected) > 1e-9 {
				t.Errorf("fidelity(%q, %q) = %g, want %g", tt.a, tt.b, f, tt.expected)
			}
		})
	}
}

func TestFidelityLengthMismatch(t *testing.T) {
	_, err := Fidelity(ket.MustParse("0"), ket.MustParse("00"))
	if err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
