package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lifecal/internal/config"
	"lifecal/internal/life"
	"lifecal/internal/pattern"
	"lifecal/internal/surface"
	"lifecal/internal/tui"
)

var (
	// Global flags
	configPath  string
	fromFlag    string
	toFlag      string
	tickFlag    int
	fillFlag    int
	seedFlag    int64
	workersFlag int
	patternFile string
	verbose     bool

	// Logger
	logger *zap.Logger
)

// rootCmd starts the interactive terminal heat-map.
var rootCmd = &cobra.Command{
	Use:   "lifecal",
	Short: "Conway's Game of Life overlaid on a calendar heat-map grid",
	Long: `lifecal runs Conway's Game of Life over a calendar grid: cells are
addressed by date, laid out one row per weekday and one column per week,
and liveness is carried by each cell's heat-map color.

Run without arguments to start the interactive terminal view.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The interactive view owns the terminal; route diagnostics to a
		// file only when asked for.
		if cmd.Name() == "lifecal" && !verbose {
			logger = zap.NewNop()
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if cmd.Name() == "lifecal" {
			cfg.OutputPaths = []string{"lifecal.log"}
			cfg.ErrorOutputPaths = []string{"lifecal.log"}
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return tui.Run(cfg, logger)
	},
}

// runCmd advances the simulation without a UI and prints stats.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run headless for a number of generations and print statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		generations, err := cmd.Flags().GetInt("generations")
		if err != nil {
			return err
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runHeadless(cfg, generations)
	},
}

// patternsCmd lists the seedable patterns.
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List built-in seed patterns",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := pattern.Names()
		if patternFile != "" {
			loaded, err := pattern.LoadFile(patternFile)
			if err != nil {
				return err
			}
			for _, p := range loaded {
				names = append(names, p.Name)
			}
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

// loadConfig merges the optional config file with flag overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if fromFlag != "" {
		cfg.From = fromFlag
	}
	if toFlag != "" {
		cfg.To = toFlag
	}
	if tickFlag > 0 {
		cfg.TickMillis = tickFlag
	}
	if fillFlag >= 0 {
		cfg.FillPercent = fillFlag
	}
	if seedFlag != 0 {
		cfg.Seed = seedFlag
	}
	if workersFlag > 0 {
		cfg.Workers = workersFlag
	}
	if patternFile != "" {
		cfg.PatternFile = patternFile
	}
	return cfg, cfg.Validate()
}

// runHeadless drives the ticker scheduler until the requested number of
// generations has run, then prints a stats summary.
func runHeadless(cfg config.Config, generations int) error {
	from, to, err := cfg.Range()
	if err != nil {
		return err
	}

	cal := surface.NewCalendar(from, to)
	engine := life.NewEngine(cal)
	engine.SetWorkers(cfg.Workers)
	renderer := life.NewRenderer(cal, engine.Index(), cfg.SeedValue())
	ctrl := life.NewController(engine, renderer, life.TickerScheduler{}, cfg.Tick(), cfg.SeedValue()+1, logger)

	ctrl.Randomize(cfg.FillPercent)
	logger.Info("headless run",
		zap.Int("cells", engine.Index().Len()),
		zap.Int("generations", generations),
		zap.Duration("tick", cfg.Tick()))

	ctrl.Start()
	for ctrl.Stats().Generations < generations {
		time.Sleep(cfg.Tick())
	}
	ctrl.Stop()

	st := ctrl.Stats()
	fmt.Printf("generations: %d\n", st.Generations)
	fmt.Printf("population:  %d\n", st.Population)
	fmt.Printf("avg pop:     %.1f\n", st.AveragePopulation)
	fmt.Printf("rate:        %.1f gen/sec\n", st.GenerationsPerSecond)
	return nil
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a JSON config file")
	pf.StringVar(&fromFlag, "from", "", "first date of the grid (YYYY-MM-DD)")
	pf.StringVar(&toFlag, "to", "", "last date of the grid (YYYY-MM-DD)")
	pf.IntVar(&tickFlag, "tick", 0, "tick interval in milliseconds")
	pf.IntVar(&fillFlag, "fill", -1, "randomize fill percentage")
	pf.Int64Var(&seedFlag, "seed", 0, "RNG seed (0 picks from the clock)")
	pf.IntVar(&workersFlag, "workers", 0, "evaluation shards (0 keeps the default)")
	pf.StringVar(&patternFile, "patterns", "", "path to a JSON pattern file")
	pf.BoolVar(&verbose, "verbose", false, "enable debug logging")

	runCmd.Flags().Int("generations", 100, "generations to run before exiting")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
