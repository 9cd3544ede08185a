// fruitgravity is a fruit-cutting arcade game for the terminal.
//
// Usage:
//
//	fruitgravity list              - List available game variants
//	fruitgravity play <game>       - Play a variant
//	fruitgravity menu              - Start menu to pick a variant interactively
//	fruitgravity serve             - Start SSH server for remote play
//	fruitgravity scores <game>     - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.fruitgravity/scores.db)
//	--config <path>       - Load game settings from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-gravity/internal/audio"
	"github.com/vovakirdan/fruit-gravity/internal/config"
	"github.com/vovakirdan/fruit-gravity/internal/core"
	"github.com/vovakirdan/fruit-gravity/internal/games/fruit"
	"github.com/vovakirdan/fruit-gravity/internal/settings"
	"github.com/vovakirdan/fruit-gravity/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitgravity",
	Short: "Fruit Gravity - cut flying fruit in your terminal",
	Long: `Fruit Gravity launches fruit in arcs across the screen. Click a fruit
to cut it in half and score a point. Click a bomb and the run is over.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  fruitgravity list
  fruitgravity play fruit
  fruitgravity play fruit_classic --difficulty hard
  fruitgravity menu
  fruitgravity serve --ssh :2222
  fruitgravity scores fruit --stats`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
			return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
		}
		// play checks the chosen variant; menu and serve can start any of them.
		gameID := ""
		if cmd.Name() == "play" && len(args) > 0 {
			gameID = args[0]
		}
		if err := fruit.CheckConfig(flagConfig, gameID); err != nil {
			return err
		}
		fruit.SetConfigPath(flagConfig)
		fruit.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fruitgravity/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}

// fileLogger logs to ~/.fruitgravity/fruitgravity.log so output does not
// tear the terminal UI. The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "fruitgravity"), func() {}
	}
	dir := filepath.Join(home, ".fruitgravity")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "fruitgravity"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "fruitgravity.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "fruitgravity"), func() {}
	}
	return newLogger(f, "fruitgravity"), func() { f.Close() }
}

// terminalConfig builds a runtime config for the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		CellRatio: core.TerminalCellRatio,
	}
}

// openStore opens the scores database. The game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// session holds the local resources shared by play and menu.
type session struct {
	logger *log.Logger
	store  *storage.Store
	prefs  *settings.Manager
	player *audio.Player
	close  func()
}

// openSession loads preferences, opens the database and starts audio.
// A flag difficulty overrides the saved one.
func openSession() *session {
	logger, closeLog := fileLogger()

	prefs, err := settings.Open(logger)
	if err != nil {
		logger.Warn("settings will not be saved", "error", err)
	}
	if flagDifficulty == "" {
		fruit.SetDifficultyPreset(prefs.Get().Difficulty)
	}

	player := audio.NewPlayer(prefs.Get().Audio())
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	fruit.SetSoundPlayer(player)

	s := &session{
		logger: logger,
		store:  openStore(logger),
		prefs:  prefs,
		player: player,
	}
	s.close = func() {
		player.Close()
		if err := prefs.Save(); err != nil {
			logger.Warn("could not save settings", "error", err)
		}
		if s.store != nil {
			s.store.Close()
		}
		closeLog()
	}
	return s
}
