package config

// Presets are ready-to-run configurations bundling a circuit preset with
// a measurement. The measured qubit is the last one the circuit touches.
var Presets = map[string]*Config{
	"bell": {
		Circuit: "bell",
		Measure: MeasureConfig{Qubit: 0, Shots: DefaultShots},
	},
	"ghz3": {
		Circuit: "ghz3",
		Measure: MeasureConfig{Qubit: 2, Shots: DefaultShots},
	},
	"ghz4": {
		Circuit: "ghz4",
		Measure: MeasureConfig{Qubit: 3, Shots: DefaultShots},
	},
}

// GetPreset returns a copy of the named run preset, or nil if unknown.
// The copy lets callers override shots or seed without mutating the
// shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	copied := *cfg
	return &copied
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
