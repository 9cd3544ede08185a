package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-gravity/internal/platform/tui"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
	"github.com/vovakirdan/fruit-gravity/internal/settings"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game variant",
	Long: `Start playing the specified variant.

Controls:
  Mouse click    - Start, cut fruit, restart after game over
  Enter/Space    - Start
  P              - Pause
  Esc            - Pause, or leave when paused or over
  R              - Restart (after game over)
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Larger fruit, starts slow, speeds up with score
  normal - Starts at 30% pace, speeds up with score
  hard   - Smaller fruit, starts at 70% pace
  fixed  - No progression, stays at the config's initial level

Without --difficulty the preset saved from the menu is used.

Examples:
  fruitgravity play fruit
  fruitgravity play fruit_classic --difficulty easy
  fruitgravity play fruit --config ./my-fruit.yaml
  fruitgravity play fruit --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fruitgravity list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	s := openSession()
	s.logger.Info("game started", "game", gameID, "seed", flagSeed)
	s.prefs.Update(func(p *settings.Settings) { p.LastGame = gameID })

	_, runErr := tui.Run(game, s.store, s.logger, terminalConfig())
	s.close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
