package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpmuller/vecsim/internal/circuit"
)

const (
	DefaultInitial = "00"
	DefaultShots   = 1024
	DefaultQubit   = 0
)

// Config describes one simulator run: the circuit to execute and the
// measurement to repeat on the final state.
type Config struct {
	Circuit string        `yaml:"circuit"` // preset name; overrides Initial/Gates when set
	Initial string        `yaml:"initial"`
	Gates   []GateConfig  `yaml:"gates"`
	Measure MeasureConfig `yaml:"measure"`
	Seed    int64         `yaml:"seed"`
}

type GateConfig struct {
	Name    string `yaml:"name"`
	Target  int    `yaml:"target"`
	Control int    `yaml:"control"`
}

type MeasureConfig struct {
	Qubit int `yaml:"qubit"`
	Shots int `yaml:"shots"`
}

func DefaultConfig() *Config {
	return &Config{
		Initial: DefaultInitial,
		Measure: MeasureConfig{
			Qubit: DefaultQubit,
			Shots: DefaultShots,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToCircuit resolves the config into a runnable circuit: the named preset
// when Circuit is set, otherwise the explicit initial state and gate list.
func (c *Config) ToCircuit() (*circuit.Circuit, error) {
	if c.Circuit != "" {
		preset := circuit.GetPreset(c.Circuit)
		if preset == nil {
			return nil, fmt.Errorf("unknown circuit preset: %s (available: %v)", c.Circuit, circuit.ListPresets())
		}
		return preset, nil
	}

	if c.Initial == "" {
		return nil, fmt.Errorf("config needs either a circuit preset or an initial state")
	}

	ops := make([]circuit.Op, 0, len(c.Gates))
	for _, g := range c.Gates {
		ops = append(ops, circuit.Op{Gate: g.Name, Target: g.Target, Control: g.Control})
	}
	return &circuit.Circuit{Name: "custom", Initial: c.Initial, Ops: ops}, nil
}
