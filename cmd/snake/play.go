package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. This is also what plain "snake" does.

Controls:
  Arrows / WASD / HJKL  - Change direction
  Esc / Q / Ctrl+C      - Quit

Logs are discarded unless --log-file is given, so they never
draw over the game.

Examples:
  snake play
  snake play --fps 15
  snake play --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	_, rt, err := loadRuntime()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	// Warn early instead of opening the alt screen on a terminal that can't fit the board.
	needW, needH := tui.BoardSize(rt.Grid)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	game := snake.New(snake.WithLogger(logger))
	if err := tui.Run(game, rt, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
