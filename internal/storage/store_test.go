package storage

import (
	"math"
	"testing"
	"time"

	"github.com/rpmuller/vecsim/internal/quantum"
)

func bellState(t *testing.T) *quantum.Register {
	t.Helper()
	reg := quantum.Zero(2)
	if err := reg.Apply1(quantum.Hadamard, 0); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if err := reg.Apply2(quantum.CNOT, 0, 1); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	return reg
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(Run{
		Circuit:       "bell",
		Seed:          42,
		MeasuredQubit: 0,
		Outcomes:      []int{0, 1, 1, 0, 0},
		Elapsed:       3 * time.Millisecond,
		Final:         bellState(t),
		Metrics:       map[string]float64{"entropy_bits": 1},
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Circuit != "bell" {
		t.Errorf("circuit = %q, want bell", meta.Circuit)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, want 42", meta.Seed)
	}
	if meta.Qubits != 2 {
		t.Errorf("qubits = %d, want 2", meta.Qubits)
	}
	if meta.Shots != 5 {
		t.Errorf("shots = %d, want 5", meta.Shots)
	}
	if meta.Counts["0"] != 3 || meta.Counts["1"] != 2 {
		t.Errorf("counts = %v, want 0:3 1:2", meta.Counts)
	}
	if math.Abs(meta.Norm-1) > 1e-10 {
		t.Errorf("norm = %g, want 1", meta.Norm)
	}
	if math.Abs(meta.Metrics["entropy_bits"]-1) > 1e-12 {
		t.Errorf("metrics did not round-trip: %v", meta.Metrics)
	}
}

func TestStoreLoadAmplitudes(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	final := bellState(t)
	runID, err := st.Save(Run{Circuit: "bell", Outcomes: []int{0}, Final: final})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	amps, err := st.LoadAmplitudes(runID)
	if err != nil {
		t.Fatalf("load amplitudes failed: %v", err)
	}
	if len(amps) != 4 {
		t.Fatalf("expected 4 amplitudes, got %d", len(amps))
	}

	want := final.Amplitudes()
	for i := range want {
		if math.Abs(real(amps[i])-real(want[i])) > 1e-12 ||
			math.Abs(imag(amps[i])-imag(want[i])) > 1e-12 {
			t.Errorf("amplitude %d = %v, want %v", i, amps[i], want[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(Run{Circuit: "bell", Outcomes: []int{1}, Final: bellState(t)}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New("/nonexistent/path/for/test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestStoreLoad_UnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("no_such_run"); err == nil {
		t.Error("expected error for unknown run id")
	}
}
