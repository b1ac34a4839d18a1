// Package storage persists simulator runs under a data directory: one
// subdirectory per run holding JSON metadata and a CSV amplitude dump.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rpmuller/vecsim/internal/quantum"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string         `json:"id"`
	Circuit       string         `json:"circuit"`
	Qubits        int            `json:"qubits"`
	Timestamp     time.Time      `json:"timestamp"`
	Seed          int64          `json:"seed"`
	MeasuredQubit int            `json:"measured_qubit"`
	Shots         int            `json:"shots"`
	Counts        map[string]int `json:"counts"`
	Norm          float64        `json:"norm"`
	ElapsedMS     float64        `json:"elapsed_ms"`

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// Run bundles everything Save needs from one execution.
type Run struct {
	Circuit       string
	Seed          int64
	MeasuredQubit int
	Outcomes      []int
	Elapsed       time.Duration
	Final         *quantum.Register
	Metrics       map[string]float64
}

// Save writes a run directory with metadata.json and amplitudes.csv and
// returns the generated run id.
func (s *Store) Save(run Run) (string, error) {
	runID := fmt.Sprintf("%s_%d", run.Circuit, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	counts := map[string]int{"0": 0, "1": 0}
	for _, o := range run.Outcomes {
		counts[strconv.Itoa(o)]++
	}

	meta := RunMetadata{
		ID:            runID,
		Circuit:       run.Circuit,
		Qubits:        run.Final.Qubits(),
		Timestamp:     time.Now(),
		Seed:          run.Seed,
		MeasuredQubit: run.MeasuredQubit,
		Shots:         len(run.Outcomes),
		Counts:        counts,
		Norm:          run.Final.Norm(),
		ElapsedMS:     float64(run.Elapsed.Microseconds()) / 1000.0,
		Metrics:       run.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "amplitudes.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "basis", "re", "im", "probability"}); err != nil {
		return "", err
	}

	qubits := run.Final.Qubits()
	for i, a := range run.Final.Amplitudes() {
		prob := real(a)*real(a) + imag(a)*imag(a)
		row := []string{
			strconv.Itoa(i),
			fmt.Sprintf("%0*b", qubits, i),
			strconv.FormatFloat(real(a), 'g', -1, 64),
			strconv.FormatFloat(imag(a), 'g', -1, 64),
			strconv.FormatFloat(prob, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadAmplitudes reads back the final state of a saved run.
func (s *Store) LoadAmplitudes(runID string) ([]complex128, error) {
	csvPath := filepath.Join(s.baseDir, runID, "amplitudes.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []complex128{}, nil
	}

	amps := make([]complex128, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		re, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		im, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		amps = append(amps, complex(re, im))
	}

	return amps, nil
}
