package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagMute    bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the level",
	Long: `Start playing the level in the terminal.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump, press again in the air to dash
  Mouse, I/J/K/L   - Aim
  E                - Toggle enhanced jump
  P/Esc            - Pause
  R                - Respawn
  M                - Mute
  Q/Ctrl+C         - Quit (the run is saved to the run log)

The terminal reports no key releases, so a key stays down until its
auto-repeat stops arriving.

Logs go to --log-file; without it they are discarded so they don't
draw over the game.

Examples:
  platformer play
  platformer play --config ./my-level.yaml
  platformer play --mute --fps 30
  platformer play --log-file /tmp/platformer.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Don't open the audio device")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levelCfg, err := config.LoadLevel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}

	synth := audio.NewSynth(logger)
	if !flagMute {
		if err := synth.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "err", err)
		}
	}
	defer synth.Cleanup()

	lvl, err := level.Build(levelCfg, level.WithLogger(logger), level.WithSoundSink(synth))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building level: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	final, runErr := tui.Run(lvl, cfg,
		tui.WithStore(store),
		tui.WithAudio(synth),
		tui.WithLogger(logger),
		tui.WithSession(tui.Session{Source: "local", Player: os.Getenv("USER")}),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	printStats(lvl.Name, lvl.Stats())
	if id := final.RunID(); id != "" {
		fmt.Printf("Run saved: %s\n", id)
	}
}

// printStats writes a run summary to stdout.
func printStats(name string, st level.Stats) {
	fmt.Printf("Level %s\n\n", name)
	fmt.Printf("  %-12s %d\n", "Frames", st.Frames)
	fmt.Printf("  %-12s %s\n", "Time", st.Elapsed.Round(10*time.Millisecond))
	fmt.Printf("  %-12s %d\n", "Jumps", st.Jumps)
	fmt.Printf("  %-12s %d\n", "Dashes", st.Dashes)
	fmt.Printf("  %-12s %d\n", "Footsteps", st.Footsteps)
	fmt.Printf("  %-12s %d\n", "Respawns", st.Respawns)
	fmt.Printf("  %-12s %.1f\n", "Max height", st.MaxHeight)
	fmt.Printf("  %-12s %.1f\n", "Distance", st.Distance)
	fmt.Println()
}
