// fruitgravity-window plays Fruit Gravity in a desktop window.
//
// Usage:
//
//	fruitgravity-window [--game fruit] [--width 960] [--height 720]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-gravity/internal/audio"
	"github.com/vovakirdan/fruit-gravity/internal/config"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit"
	"github.com/vovakirdan/fruit-gravity/internal/platform/window"
	"github.com/vovakirdan/fruit-gravity/internal/registry"
	"github.com/vovakirdan/fruit-gravity/internal/settings"
	"github.com/vovakirdan/fruit-gravity/internal/storage"
)

var (
	flagGame       string
	flagWidth      int
	flagHeight     int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagFullscreen bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitgravity-window",
	Short: "Play Fruit Gravity in a window",
	Long: `Opens a resizable window and starts the chosen variant.

Controls:
  Left click     - Start, cut fruit, restart after game over
  Enter/Space    - Start
  P              - Pause
  Esc            - Pause, or quit when paused or over
  R              - Restart (after game over)
  F              - Toggle fullscreen
  M              - Toggle sound
  Q              - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagGame, "game", fruit.IDFruit, "Variant to play")
	rootCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	rootCmd.Flags().IntVar(&flagHeight, "height", 720, "Window height in pixels")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.fruitgravity/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruitgravity",
		Level:           level,
	})

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	if err := fruit.CheckConfig(flagConfig, flagGame); err != nil {
		return err
	}

	game, err := registry.Create(flagGame)
	if err != nil {
		return err
	}
	scene, ok := game.(window.Scene)
	if !ok {
		return fmt.Errorf("game %q cannot be drawn in a window", flagGame)
	}

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = prefs.Get().Difficulty
	}
	fruit.SetConfigPath(flagConfig)
	fruit.SetDifficultyPreset(difficulty)

	player := audio.NewPlayer(prefs.Get().Audio())
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	defer player.Close()
	// Games pick up the player on Reset, which NewApp calls.
	fruit.SetSoundPlayer(player)
	if ds, ok := scene.(registry.DifficultySetter); ok {
		ds.SetDifficulty(difficulty)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	fullscreen := flagFullscreen || (!cmd.Flags().Changed("fullscreen") && prefs.Get().Fullscreen)
	app := window.NewApp(scene, window.Options{
		Store:    store,
		Logger:   logger,
		Settings: prefs,
		Player:   player,
		Width:    flagWidth,
		Height:   flagHeight,
		Seed:     flagSeed,
	})

	logger.Info("window opened", "game", flagGame, "difficulty", difficulty)
	runErr := window.Run(app, fullscreen)

	prefs.Update(func(s *settings.Settings) { s.LastGame = flagGame })
	if err := prefs.Save(); err != nil {
		logger.Warn("could not save settings", "error", err)
	}
	return runErr
}
