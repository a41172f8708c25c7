package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagFrames   int
	flagInput    string
	flagAim      string
	flagEnhanced bool
	flagTrace    int
	flagSave     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the level headless from an input script",
	Long: `Run the level without a terminal UI, feeding it a scripted input.

The script is a comma-separated list of steps. Each step names the keys
held down, joined by '+', or '-' for none, and an optional frame count
(default 1). A key held across two consecutive steps is not pressed again.

Keys: A, D, Space, W, S, E, P, R, Up, Down, Left, Right, Enter, Escape.

Examples:
  platformer simulate --input "D:30,Space,-:60"
  platformer simulate --input "Space,-:30,Space" --frames 240 --trace 10
  platformer simulate --input "A:45" --aim -100,60 --enhanced --save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to run (0 = script length, at least one second)")
	simulateCmd.Flags().StringVar(&flagInput, "input", "", "Input script")
	simulateCmd.Flags().StringVar(&flagAim, "aim", "", "Pointer position in world units as x,y")
	simulateCmd.Flags().BoolVar(&flagEnhanced, "enhanced", false, "Turn on enhanced jump")
	simulateCmd.Flags().IntVar(&flagTrace, "trace", 0, "Print the player state every N frames")
	simulateCmd.Flags().BoolVar(&flagSave, "save", false, "Save the run to the run log")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := level.ParseScript(flagInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levelCfg, err := config.LoadLevel(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}
	lvl, err := level.Build(levelCfg, level.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building level: %v\n", err)
		os.Exit(1)
	}

	if flagAim != "" {
		aim, err := parseVec(flagAim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: --aim: %v\n", err)
			os.Exit(1)
		}
		lvl.World.SetPointer(aim)
	}
	lvl.World.SetJumpEnhanced(flagEnhanced)

	rt := core.RuntimeConfig{TickRate: flagFPS}
	frames := flagFrames
	if frames <= 0 {
		frames = core.MaxInt(script.Frames(), flagFPS)
	}

	if flagTrace > 0 {
		fmt.Printf("  %6s  %9s  %9s  %8s  %8s  %-6s  %s\n", "frame", "x", "y", "vx", "vy", "ground", "dashes")
	}
	lvl.Play(script, frames, rt.FrameDelta(), func(f int) {
		if flagTrace > 0 && f%flagTrace == 0 {
			printTrace(lvl, f)
		}
	})
	if flagTrace > 0 {
		fmt.Println()
	}

	printStats(lvl.Name, lvl.Stats())

	if !flagSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(tui.RunRecord(lvl.Name, tui.Session{Source: "simulate", Player: os.Getenv("USER")}, lvl.Stats()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return
	}
	fmt.Printf("Run saved: %s\n", id)
}

func printTrace(lvl *level.Level, frame int) {
	w := lvl.World
	p := lvl.Player()
	pos := w.WorldPosition(p)
	vel := w.Velocity(p)

	ground, dashes := "-", "-"
	if c, ok := lvl.Character(); ok {
		st := c.State()
		ground = strconv.FormatBool(st.Grounded)
		dashes = strconv.Itoa(st.RemainingDashes)
	}
	fmt.Printf("  %6d  %9.2f  %9.2f  %8.2f  %8.2f  %-6s  %s\n",
		frame, pos.X(), pos.Y(), vel.X(), vel.Y(), ground, dashes)
}

// parseVec parses "x,y".
func parseVec(s string) (core.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Vec2{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return core.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return core.Vec2{}, err
	}
	return core.V2(float32(x), float32(y)), nil
}
