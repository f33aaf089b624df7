package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/glider/internal/games/glider"
	"github.com/vovakirdan/glider/internal/storage"
)

var (
	flagSimRuns      int
	flagSimTicks     int
	flagSimWidth     int
	flagSimHeight    int
	flagSimClassic   bool
	flagSimSave      bool
	flagSimLogFormat string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Fly the autopilot headless and report the results",
	Long: `Run the autopilot against the simulation without a terminal UI.

Each run uses seed, seed+1, ... so results are reproducible with --seed.
The report includes a hash of the final state, handy for spotting
behaviour changes between builds.

Examples:
  glider sim
  glider sim --runs 10 --seed 42
  glider sim --classic --ticks 20000 --log-format json
  glider sim --runs 3 --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 30*60*5, "Tick limit per run")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Virtual terminal width in cells")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Virtual terminal height in cells")
	simCmd.Flags().BoolVar(&flagSimClassic, "classic", false, "Simulate the classic variant")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Store finished runs in the database")
	simCmd.Flags().StringVar(&flagSimLogFormat, "log-format", "text", "Report format: text, json or logfmt")
}

func newSimLogger(format string) (*log.Logger, error) {
	var formatter log.Formatter
	switch format {
	case "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return log.NewWithOptions(os.Stdout, log.Options{
		ReportTimestamp: format == "text",
		Prefix:          "sim",
		Formatter:       formatter,
	}), nil
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newSimLogger(flagSimLogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	variant, gameID := glider.VariantStandard, "glider"
	if flagSimClassic {
		variant, gameID = glider.VariantClassic, "glider_classic"
	}

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open runs database", "error", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var total, best int
	for i := range flagSimRuns {
		start := time.Now()
		report, err := glider.Simulate(variant, flagSimWidth, flagSimHeight, seed+int64(i), flagSimTicks, nil)
		if err != nil {
			logger.Error("simulation failed", "run", i+1, "error", err)
			os.Exit(1)
		}

		logger.Info("run finished",
			"run", i+1,
			"variant", gameID,
			"seed", report.Seed,
			"ticks", report.Ticks,
			"score", report.Score,
			"distance", int(report.Distance),
			"lives", report.LivesLeft,
			"game_over", report.GameOver,
			"hash", fmt.Sprintf("%016x", report.Hash),
			"elapsed", time.Since(start).Round(time.Microsecond),
		)

		total += report.Score
		best = max(best, report.Score)

		if store != nil && report.Score > 0 {
			run := storage.Run{GameID: gameID, Score: report.Score, Distance: report.Distance, Seed: report.Seed}
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save run", "run", i+1, "error", err)
			}
		}
	}

	if flagSimRuns > 1 {
		logger.Info("summary", "runs", flagSimRuns, "best", best, "avg", float64(total)/float64(flagSimRuns))
	}
}
