package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpmuller/vecsim/internal/circuit"
	"github.com/rpmuller/vecsim/internal/config"
	"github.com/rpmuller/vecsim/internal/ket"
	"github.com/rpmuller/vecsim/internal/metrics"
	"github.com/rpmuller/vecsim/internal/quantum"
	"github.com/rpmuller/vecsim/internal/sim"
	"github.com/rpmuller/vecsim/internal/storage"
	"github.com/rpmuller/vecsim/internal/tui"
	"github.com/rpmuller/vecsim/internal/viz"
)

var (
	dataDir    string
	gates      string
	configFile string
	shots      int
	qubit      int
	seed       int64
	runs       int
	benchSizes []int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vecsim",
		Short: "quantum state-vector simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vecsim", "data directory")

	stateCmd := &cobra.Command{
		Use:   "state [ket]",
		Short: "print a state, optionally after a gate program",
		Args:  cobra.ExactArgs(1),
		RunE:  printState,
	}
	stateCmd.Flags().StringVar(&gates, "gates", "", `gate program, e.g. "h 0, cnot 0 1"`)

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "execute a circuit and measure",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCircuit,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().IntVar(&shots, "shots", config.DefaultShots, "measurement repetitions")
	runCmd.Flags().IntVar(&qubit, "qubit", config.DefaultQubit, "qubit to measure")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	sampleCmd := &cobra.Command{
		Use:   "sample [preset]",
		Short: "measure across independent preparations of a circuit",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sampleCircuit,
	}
	sampleCmd.Flags().IntVar(&runs, "runs", 200, "independent preparations")
	sampleCmd.Flags().IntVar(&qubit, "qubit", config.DefaultQubit, "qubit to measure")
	sampleCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "GHZ-state scaling benchmark",
		RunE:  benchGHZ,
	}
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{10, 15, 18, 20, 22}, "qubit counts to benchmark")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot final-state probabilities of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list circuit presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range circuit.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui [preset]",
		Short: "step through a circuit interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "bell"
			if len(args) > 0 {
				name = args[0]
			}
			c := circuit.GetPreset(name)
			if c == nil {
				return fmt.Errorf("unknown preset: %s (available: %v)", name, circuit.ListPresets())
			}
			return tui.Run(c)
		},
	}

	rootCmd.AddCommand(stateCmd, runCmd, sampleCmd, benchCmd, listCmd, plotCmd, exportCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printState(cmd *cobra.Command, args []string) error {
	reg, err := ket.Parse(args[0])
	if err != nil {
		return err
	}

	if gates != "" {
		ops, err := circuit.ParseOps(gates)
		if err != nil {
			return err
		}
		if err := circuit.Apply(reg, ops); err != nil {
			return err
		}
	}

	fmt.Println(reg.Terms())
	return nil
}

func runCircuit(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		if preset := config.GetPreset(args[0]); preset != nil {
			cfg = preset
		} else {
			cfg.Circuit = args[0]
		}
	}
	if cmd.Flags().Changed("shots") || cfg.Measure.Shots == 0 {
		cfg.Measure.Shots = shots
	}
	if cmd.Flags().Changed("qubit") {
		cfg.Measure.Qubit = qubit
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	circ, err := cfg.ToCircuit()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s (%d qubits)...\n", circ.Name, circ.Qubits())
	start := time.Now()

	reg, err := circ.Run()
	if err != nil {
		return err
	}

	// Snapshot before measurement so saved amplitudes reflect the
	// circuit output, not the collapsed state.
	final := reg.Clone()
	entropy := metrics.Entropy(final)

	rng := rand.New(rand.NewSource(cfg.Seed))
	outcomes, err := reg.Measure(cfg.Measure.Qubit, cfg.Measure.Shots, rng)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(storage.Run{
		Circuit:       circ.Name,
		Seed:          cfg.Seed,
		MeasuredQubit: cfg.Measure.Qubit,
		Outcomes:      outcomes,
		Elapsed:       elapsed,
		Final:         final,
		Metrics:       map[string]float64{"entropy_bits": entropy},
	})
	if err != nil {
		return err
	}

	counts := map[string]int{"0": 0, "1": 0}
	for _, o := range outcomes {
		counts[fmt.Sprint(o)]++
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("final state: %s\n", final.Terms())
	fmt.Printf("entropy: %.4f bits\n", entropy)
	fmt.Printf("\nqubit %d over %d shots:\n", cfg.Measure.Qubit, len(outcomes))
	fmt.Print(viz.Histogram(counts, len(outcomes), 32))

	return nil
}

func sampleCircuit(cmd *cobra.Command, args []string) error {
	name := "bell"
	if len(args) > 0 {
		name = args[0]
	}
	circ := circuit.GetPreset(name)
	if circ == nil {
		return fmt.Errorf("unknown preset: %s (available: %v)", name, circuit.ListPresets())
	}

	fmt.Printf("sampling %s: %d independent preparations, measuring qubit %d\n",
		circ.Name, runs, qubit)

	start := time.Now()
	ens := sim.NewEnsemble(circ, qubit, runs, seed)
	outcomes, err := ens.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v\n\n", elapsed)
	fmt.Print(viz.Histogram(sim.Counts(outcomes), len(outcomes), 32))

	return nil
}

func benchGHZ(cmd *cobra.Command, args []string) error {
	// Quick demo of the primitives before timing anything.
	fmt.Println("|0>         =", ket.MustParse("0"))

	x := ket.MustParse("0")
	x.Apply1(quantum.PauliX, 0)
	fmt.Println("|0>.X(0)    =", x)

	h := ket.MustParse("0")
	h.Apply1(quantum.Hadamard, 0)
	fmt.Println("|0>.H(0)    =", h)

	fmt.Println("|+>         =", ket.MustParse("+"))

	bell, err := circuit.Bell().Run()
	if err != nil {
		return err
	}
	fmt.Println("Bell state  =", bell)

	fmt.Println("\n--- benchmark ---")

	for _, n := range benchSizes {
		t0 := time.Now()
		reg, err := ket.Parse(strings.Repeat("0", n))
		if err != nil {
			return err
		}
		setup := time.Since(t0)

		t0 = time.Now()
		if err := circuit.Apply(reg, circuit.GHZ(n).Ops); err != nil {
			return err
		}
		gateTime := time.Since(t0)

		fmt.Printf("%2d qubits (%8d amps): setup %10v, gates %10v (H + %d CNOTs)\n",
			n, 1<<n, setup, gateTime, n-1)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCIRCUIT\tQUBITS\tTIME\tSHOTS\tCOUNTS\tELAPSED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t0:%d 1:%d\t%.2fms\n",
			run.ID,
			run.Circuit,
			run.Qubits,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Shots,
			run.Counts["0"],
			run.Counts["1"],
			run.ElapsedMS,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	amps, err := st.LoadAmplitudes(runID)
	if err != nil {
		return err
	}

	if len(amps) == 0 {
		return fmt.Errorf("no amplitude data for run %s", runID)
	}

	probs := make([]float64, len(amps))
	for i, a := range amps {
		probs[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("circuit: %s (%d qubits)\n\n", meta.Circuit, meta.Qubits)

	fmt.Println(viz.ProbabilityGraph(probs, "probability vs basis index"))
	fmt.Println()
	fmt.Print(viz.Histogram(meta.Counts, meta.Shots, 32))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
