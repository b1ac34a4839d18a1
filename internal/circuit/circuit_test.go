package circuit

import (
	"math"
	"strings"
	"testing"
)

func TestBellPreset(t *testing.T) {
	c := Bell()
	reg, err := c.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s := 1 / math.Sqrt2
	if !reg.CloseToReals([]float64{s, 0, 0, s}) {
		t.Errorf("bell circuit produced %s", reg)
	}
}

func TestGHZPreset(t *testing.T) {
	c := GHZ(3)
	if c.Qubits() != 3 {
		t.Fatalf("GHZ(3) qubits = %d", c.Qubits())
	}
	if len(c.Ops) != 3 {
		t.Fatalf("GHZ(3) ops = %d, want H + 2 CNOTs", len(c.Ops))
	}

	reg, err := c.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	s := 1 / math.Sqrt2
	if !reg.CloseToReals([]float64{s, 0, 0, 0, 0, 0, 0, s}) {
		t.Errorf("ghz circuit produced %s", reg)
	}
}

func TestRun_UnknownGate(t *testing.T) {
	c := &Circuit{Initial: "0", Ops: []Op{{Gate: "frobnicate", Target: 0}}}
	if _, err := c.Run(); err == nil {
		t.Error("expected error for unknown gate")
	}
}

func TestRun_GateErrorIncludesPosition(t *testing.T) {
	c := &Circuit{Initial: "0", Ops: []Op{
		{Gate: "x", Target: 0},
		{Gate: "x", Target: 5},
	}}
	_, err := c.Run()
	if err == nil {
		t.Fatal("expected error for out-of-range target")
	}
	if !strings.Contains(err.Error(), "op 1") {
		t.Errorf("error should name the failing op: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	if GetPreset("bell") == nil {
		t.Error("expected bell preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Fatal("expected presets")
	}
	found := false
	for _, p := range presets {
		if p == "bell" {
			found = true
		}
	}
	if !found {
		t.Error("bell missing from preset list")
	}
}

func TestGateNames(t *testing.T) {
	names := GateNames()
	for _, want := range []string{"h", "x", "cnot", "cphase"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("gate %q missing from registry", want)
		}
	}
}

func TestParseOps(t *testing.T) {
	ops, err := ParseOps("h 0, cnot 0 1, z 1")
	if err != nil {
		t.Fatalf("ParseOps failed: %v", err)
	}

	expected := []Op{
		{Gate: "h", Target: 0},
		{Gate: "cnot", Control: 0, Target: 1},
		{Gate: "z", Target: 1},
	}
	if len(ops) != len(expected) {
		t.Fatalf("got %d ops, want %d", len(ops), len(expected))
	}
	for i, op := range ops {
		if op != expected[i] {
			t.Errorf("op %d = %+v, want %+v", i, op, expected[i])
		}
	}
}

func TestParseOps_Errors(t *testing.T) {
	tests := []struct {
		name    string
		program string
	}{
		{"unknown gate", "warp 0"},
		{"missing target", "h"},
		{"too many args", "x 0 1"},
		{"missing control", "cnot 1"},
		{"bad index", "h zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOps(tt.program); err == nil {
				t.Errorf("ParseOps(%q): expected error", tt.program)
			}
		})
	}
}

func TestParseOps_CaseAndSpacing(t *testing.T) {
	ops, err := ParseOps("  H 0 ,  CNOT 0 1 ")
	if err != nil {
		t.Fatalf("ParseOps failed: %v", err)
	}
	if len(ops) != 2 || ops[0].Gate != "h" || ops[1].Gate != "cnot" {
		t.Errorf("unexpected ops: %+v", ops)
	}
}
