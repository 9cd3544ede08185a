package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-gravity/internal/platform/tui"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a run you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  D            - Cycle difficulty
  M            - Toggle sound
  Tab          - Scoreboard
  Q            - Quit

Examples:
  fruitgravity menu
  fruitgravity menu --fps 30
  fruitgravity menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	s := openSession()
	defer s.close()

	cfg := terminalConfig()

	for {
		menuResult, err := tui.RunMenu(s.store, s.prefs, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config
		s.player.SetConfig(s.prefs.Get().Audio())

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(s.store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			s.logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}
		if ds, ok := game.(registry.DifficultySetter); ok && menuResult.Difficulty != "" {
			ds.SetDifficulty(menuResult.Difficulty)
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		s.logger.Info("game started", "game", menuResult.GameID, "difficulty", menuResult.Difficulty)

		backToMenu, err := tui.Run(game, s.store, s.logger, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break // Quit from the game
		}
	}
}
