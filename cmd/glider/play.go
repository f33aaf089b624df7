package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/glider/internal/audio"
	"github.com/vovakirdan/glider/internal/core"
	"github.com/vovakirdan/glider/internal/platform/tui"
	"github.com/vovakirdan/glider/internal/registry"
	"github.com/vovakirdan/glider/internal/storage"
)

var (
	flagVariant string
	flagMute    bool
	flagHold    time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start flying. The variant can be given as an argument or with --variant.

Controls:
  Space/Up/W - Fly (pitch up)
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Terminals only report key presses, so by default each press of Space
toggles flying on and off. With --hold, a press counts as held for that
long and key repeat keeps it held.

Difficulty options:
  easy   - More lives, gaps start wide
  normal - Start at 30% difficulty, progresses to max
  hard   - Fewer lives, start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  glider play
  glider play glider_classic
  glider play --difficulty hard --hold 150ms
  glider play --config ./my-glider.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagVariant, "variant", "glider", "Variant to play (see 'glider list')")
	addSessionFlags(playCmd)
}

// addSessionFlags registers the flags shared by interactive commands.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	cmd.Flags().DurationVar(&flagHold, "hold", 0, "How long a fly press counts as held (0 = toggle)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := flagVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'glider list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sound := openAudio()
	runErr := tui.Run(game, store, runtimeConfig(), tui.Options{Hold: flagHold, Observer: sound})

	sound.Close()
	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openAudio returns a sound manager attached to the speaker, or a silent
// one when muted or no audio device is available.
func openAudio() *audio.Manager {
	sound := audio.NewManager()
	if flagMute {
		sound.SetMuted(true)
		return sound
	}
	if err := sound.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (sound disabled)\n", err)
		sound.SetMuted(true)
	}
	return sound
}
