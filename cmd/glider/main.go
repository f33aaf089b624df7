// glider is a terminal glider game: hold fly to pitch up, release to glide,
// and thread the gaps between obstacles.
//
// Usage:
//
//	glider list              - List available variants
//	glider play [variant]    - Play a variant (default: glider)
//	glider menu              - Pick a variant interactively
//	glider serve             - Start SSH server for remote play
//	glider scores [variant]  - Show best runs
//	glider sim               - Run the autopilot headless and report
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.glider/glider.db)
//	--config <path>       - Custom glider config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glider/internal/games/glider"
	"github.com/vovakirdan/glider/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glider",
	Short: "Glider - fly through the gaps in your terminal",
	Long: `Glider is a one-button flight game for the terminal.

Hold fly (Space) to pitch the nose up; let go and the glider noses down
to pick up speed. Fly through the gaps between obstacles to score.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  sim      - Headless autopilot run

Examples:
  glider play
  glider play glider_classic --difficulty hard
  glider menu
  glider serve --ssh :2222
  glider sim --runs 5 --seed 42`,
	PersistentPreRunE: applyGameFlags,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom glider config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags hands the config flags to the glider package before any
// game is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" {
		glider.SetDifficultyPreset(flagDifficulty)
		if glider.DifficultyPreset() == "" {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
	}
	glider.SetConfigPath(flagConfig)
	if _, err := glider.LoadConfig(glider.VariantStandard); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	return nil
}
