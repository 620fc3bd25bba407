package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chargebox/internal/config"
	"github.com/san-kum/chargebox/internal/engine"
	"github.com/san-kum/chargebox/internal/export"
	"github.com/san-kum/chargebox/internal/metrics"
	"github.com/san-kum/chargebox/internal/particle"
	"github.com/san-kum/chargebox/internal/sim"
	"github.com/san-kum/chargebox/internal/storage"
	"github.com/san-kum/chargebox/internal/viz"
)

var (
	dataDir    string
	population int
	arenaW     float64
	arenaH     float64
	dt         float64
	charge     float64
	mass       float64
	kConst     float64
	v0         float64
	minDist    float64
	seed       int64
	substeps   int
	frames     int
	configFile string
	preset     string
	frameRate  int
	// plot/export selection
	particleIdx int
	outFile     string
	lastFrame   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chargebox",
		Short: "charged particle simulation in a reflecting box",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chargebox", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run simulation and store the result",
		RunE:  runSimulation,
	}
	addPhysicsFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "recorded frames")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal view",
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a particle's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	exportCmd.Flags().StringVar(&outFile, "out", "trajectory.svg", "output file")
	exportCmd.Flags().BoolVar(&lastFrame, "frame", false, "export the final frame instead of a trajectory")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPhysicsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&population, "particles", "n", config.DefaultPopulation, "number of particles")
	cmd.Flags().Float64Var(&arenaW, "width", config.DefaultWidth, "arena width (m)")
	cmd.Flags().Float64Var(&arenaH, "height", config.DefaultHeight, "arena height (m)")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().Float64Var(&charge, "charge", config.DefaultCharge, "particle charge (C)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "particle mass (kg)")
	cmd.Flags().Float64Var(&kConst, "k", config.DefaultK, "Coulomb constant")
	cmd.Flags().Float64Var(&v0, "v0", config.DefaultV0, "initial speed range (m/s)")
	cmd.Flags().Float64Var(&minDist, "min-dist", config.DefaultMinDist, "interaction distance floor (m)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().IntVar(&substeps, "substeps", config.DefaultSubsteps, "engine steps per frame")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves precedence: preset, then config file, then flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("particles", func() { cfg.Population = population })
	set("width", func() { cfg.Width = arenaW })
	set("height", func() { cfg.Height = arenaH })
	set("dt", func() { cfg.Dt = dt })
	set("charge", func() { cfg.Charge = charge })
	set("mass", func() { cfg.Mass = mass })
	set("k", func() { cfg.K = kConst })
	set("v0", func() { cfg.V0 = v0 })
	set("min-dist", func() { cfg.MinDist = minDist })
	set("substeps", func() { cfg.Substeps = substeps })
	set("frames", func() { cfg.Frames = frames })

	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	eng, err := engine.New(cfg.EngineParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	runner := sim.New(eng)
	runner.AddMetric(metrics.NewKinetic())
	runner.AddMetric(metrics.NewEnergyDrift())
	runner.AddMetric(metrics.NewSpread())
	runner.AddMetric(metrics.NewWallBounces())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d particles for %d frames...\n", cfg.Population, cfg.Frames)
	start := time.Now()

	result, err := runner.Run(ctx, sim.Config{Frames: cfg.Frames, Substeps: cfg.Substeps})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg, seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6e\n", name, val)
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.EngineParams(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	return viz.Run(eng, cfg.Substeps, frameRate)
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
	fmt.Fprintln(w, "ID\tTIME\tPARTICLES\tFRAMES\tDT\tSEED")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2e\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Population,
			run.Frames,
			run.Dt,
			run.Seed,
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

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if particleIdx < 0 || particleIdx >= len(frames[0]) {
		return fmt.Errorf("particle index %d out of range [0,%d)", particleIdx, len(frames[0]))
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("particle: %d\n", particleIdx)
	fmt.Printf("samples: %d\n\n", len(frames))

	xs := make([]float64, len(frames))
	ys := make([]float64, len(frames))
	for f := range frames {
		xs[f] = frames[f][particleIdx].X
		ys[f] = frames[f][particleIdx].Y
	}

	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{xs, "x position (m)"},
		{ys, "y position (m)"},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, _, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	var svg string
	if lastFrame {
		svg = export.FrameToSVG(frames[len(frames)-1], meta.Width, meta.Height, 1000, 800, "#ffff00")
	} else {
		if particleIdx < 0 || particleIdx >= len(frames[0]) {
			return fmt.Errorf("particle index %d out of range [0,%d)", particleIdx, len(frames[0]))
		}
		path := make([]particle.Vec2, 0, len(frames))
		for f := range frames {
			path = append(path, frames[f][particleIdx])
		}
		svg = export.TrajectoryToSVG(path, meta.Width, meta.Height, 1000, 800, "#00ff88")
	}

	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outFile)
	return nil
}
