package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Initial != DefaultInitial {
		t.Errorf("expected initial %q, got %q", DefaultInitial, cfg.Initial)
	}
	if cfg.Measure.Shots <= 0 {
		t.Error("shots should be positive")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := &Config{
		Initial: "000",
		Gates: []GateConfig{
			{Name: "h", Target: 0},
			{Name: "cnot", Control: 0, Target: 1},
		},
		Measure: MeasureConfig{Qubit: 1, Shots: 256},
		Seed:    42,
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Initial != "000" {
		t.Errorf("initial = %q, want %q", loaded.Initial, "000")
	}
	if len(loaded.Gates) != 2 || loaded.Gates[1].Name != "cnot" {
		t.Errorf("gates did not round-trip: %+v", loaded.Gates)
	}
	if loaded.Measure.Shots != 256 || loaded.Measure.Qubit != 1 {
		t.Errorf("measure did not round-trip: %+v", loaded.Measure)
	}
	if loaded.Seed != 42 {
		t.Errorf("seed = %d, want 42", loaded.Seed)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestToCircuit_Preset(t *testing.T) {
	cfg := &Config{Circuit: "bell"}
	c, err := cfg.ToCircuit()
	if err != nil {
		t.Fatalf("ToCircuit failed: %v", err)
	}
	if c.Name != "bell" || len(c.Ops) != 2 {
		t.Errorf("unexpected circuit: %+v", c)
	}
}

func TestToCircuit_UnknownPreset(t *testing.T) {
	cfg := &Config{Circuit: "nonexistent"}
	if _, err := cfg.ToCircuit(); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestToCircuit_Explicit(t *testing.T) {
	cfg := &Config{
		Initial: "00",
		Gates:   []GateConfig{{Name: "h", Target: 0}},
	}
	c, err := cfg.ToCircuit()
	if err != nil {
		t.Fatalf("ToCircuit failed: %v", err)
	}
	if c.Qubits() != 2 || len(c.Ops) != 1 {
		t.Errorf("unexpected circuit: %+v", c)
	}
}

func TestToCircuit_Empty(t *testing.T) {
	cfg := &Config{}
	if _, err := cfg.ToCircuit(); err == nil {
		t.Error("expected error for empty config")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bell")
	if cfg == nil {
		t.Fatal("bell preset missing")
	}
	if cfg.Circuit != "bell" || cfg.Measure.Shots != DefaultShots {
		t.Errorf("unexpected preset: %+v", cfg)
	}

	// The returned config is a copy.
	cfg.Measure.Shots = 1
	if Presets["bell"].Measure.Shots != DefaultShots {
		t.Error("GetPreset returned the shared config")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetsResolve(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if _, err := cfg.ToCircuit(); err != nil {
			t.Errorf("preset %s does not resolve: %v", name, err)
		}
	}
}
