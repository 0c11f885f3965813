// joust is a terminal rendition of the arcade classic: mounted knights
// bounce off each other over a pit of lava, and the higher lance wins.
//
// Usage:
//
//	joust list               - List available modes
//	joust play [mode]        - Play (default: joust)
//	joust menu               - Start menu to pick a mode interactively
//	joust serve              - Start SSH server for remote play
//	joust scores <mode>      - Show high scores and recent runs
//	joust simulate           - Run the simulation headless and print its hash
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.joust/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--debug               - Verbose logging, invariant violations panic
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-joust/internal/config"
	"github.com/vovakirdan/tui-joust/internal/games/joust"
	"github.com/vovakirdan/tui-joust/internal/games/joust/sim"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

var (
	// logger is shared by the game package and the server.
	logger *log.Logger
	// logFile is closed when the command finishes.
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "joust",
	Short: "Joust - mounted combat over a lava pit, in your terminal",
	Long: `Joust is a terminal rendition of the arcade classic. Flap to climb,
strike riders from above, collect their eggs before they hatch.

Available commands:
  list      - Show all available modes
  play      - Play directly
  menu      - Interactive mode picker menu
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  simulate  - Run headless and print the final state hash

Examples:
  joust play
  joust play joust_endless --difficulty hard
  joust menu
  joust serve --ssh :2222
  joust simulate --seed 42 --ticks 3600`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.joust/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Verbose logging; invariant violations panic")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup applies the global flags to the game package before any command runs.
func setup(_ *cobra.Command, _ []string) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	joust.SetConfigPath(flagConfig)
	joust.SetDifficultyPreset(flagDifficulty)
	sim.Strict = flagDebug

	l, err := newLogger()
	if err != nil {
		return err
	}
	logger = l
	joust.SetLogger(logger)
	return nil
}

// newLogger builds the game logger. The TUI owns the terminal, so logs are
// dropped unless a file is given.
func newLogger() (*log.Logger, error) {
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "joust",
	})
	if flagDebug {
		l.SetLevel(log.DebugLevel)
	}
	return l, nil
}
