package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the board in a desktop window, board.cell_size pixels per cell
(640x480 with the defaults).

Controls:
  Arrows / WASD  - Change direction
  Esc            - Quit (closing the window works too)

Examples:
  snake window
  snake window --seed 7 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	_, rt, err := loadRuntime()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("snake", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	return window.Run(snake.New(snake.WithLogger(logger)), rt, logger)
}
