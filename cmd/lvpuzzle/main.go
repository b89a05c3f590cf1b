// Command lvpuzzle browses, solves and judges the puzzle corpus.
//
//	lvpuzzle list --tag dp
//	lvpuzzle show two-sum
//	lvpuzzle solve 1 '[[2,7,11,15], 9]'
//	lvpuzzle judge cases/ --watch
//	lvpuzzle config init
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvpuzzle/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    = config.Default()
	logger *zap.Logger
)

// errFailed signals a judge run with rejected cases; it is reported through
// the exit code only.
var errFailed = errors.New("some cases were not accepted")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvpuzzle",
		Short: "Browse, solve and judge algorithm puzzles",
		Long: `lvpuzzle is a corpus of algorithm puzzles grouped by technique
(arrays, strings, stacks, heaps, intervals, union-find, graphs, dynamic
programming, tries, linked lists, trees, binary search, concurrency).

Every puzzle takes positional JSON arguments and returns a JSON answer, so it
can be run from the command line or judged against YAML/JSONC case files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = c

			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			zc := zap.NewProductionConfig()
			zc.Level = zap.NewAtomicLevelAt(level)
			if verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("config loaded",
				zap.String("path", configPath),
				zap.Int("parallelism", cfg.Parallelism),
				zap.Duration("timeout", cfg.Timeout))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "lvpuzzle.yaml", "Path to the YAML config file")

	root.AddCommand(newListCmd(), newShowCmd(), newSolveCmd(), newJudgeCmd(), newConfigCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errFailed):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
