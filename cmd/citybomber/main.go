// citybomber is a City Bomber arcade game for the terminal and the desktop.
//
// Usage:
//
//	citybomber play      - Play in the terminal
//	citybomber window    - Play in a desktop window
//	citybomber scores    - Show the run history
//	citybomber serve     - Start SSH server for remote play
//	citybomber config    - Print the game configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 50)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.citybomber/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/citybomber/internal/audio"
	"github.com/vovakirdan/citybomber/internal/config"
	"github.com/vovakirdan/citybomber/internal/core"
	"github.com/vovakirdan/citybomber/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "citybomber",
	Short: "City Bomber - flatten the city before your plane comes down",
	Long: `City Bomber puts you in a plane sweeping over a city, one row lower
on every pass. Bomb the buildings flat before you fly into one.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  scores   - View the run history
  serve    - Start SSH server for remote play
  config   - Print the game configuration

Examples:
  citybomber play
  citybomber window --background ./assets/city_skyline-background.png
  citybomber scores --browse
  citybomber serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fatal logs a startup failure and exits 1.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

// loadGameConfig loads the YAML config and applies --fps when it was given.
func loadGameConfig(cmd *cobra.Command, path string) (config.BomberConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Timing.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// openStore opens the run history. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startAudio loads and starts the cue player, or returns nil when muted.
func startAudio(cfg config.AudioConfig, mute bool, soundsDir string, logger *log.Logger) (*audio.Player, error) {
	if mute || !cfg.Enabled {
		return nil, nil
	}
	if soundsDir == "" {
		soundsDir = cfg.SoundsDir
	}

	player := audio.NewPlayer(cfg, logger)
	if err := player.Load(soundsDir); err != nil {
		return nil, err
	}
	if err := player.Start(); err != nil {
		return nil, err
	}
	return player, nil
}

// outcomeLine describes a finished run for the shell.
func outcomeLine(outcome core.Outcome, score int) string {
	switch outcome {
	case core.OutcomeLanded:
		return fmt.Sprintf("Landed safely! Score: %d", score)
	case core.OutcomeCrashed:
		return fmt.Sprintf("Crashed into the city. Score: %d", score)
	default:
		return fmt.Sprintf("Run abandoned. Score: %d", score)
	}
}
