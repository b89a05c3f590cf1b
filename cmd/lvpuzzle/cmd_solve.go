package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/catalog"
)

var solvePretty bool

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <id|slug> <json-args>",
		Short: "Run one puzzle on a JSON array of positional arguments",
		Long: `Run one puzzle and print its answer as JSON.

The arguments are a JSON array with one element per parameter, e.g.

  lvpuzzle solve two-sum '[[2,7,11,15], 9]'

Pass "-" to read the array from standard input.`,
		Args: cobra.ExactArgs(2),
		RunE: runSolve,
	}
	cmd.Flags().BoolVar(&solvePretty, "pretty", false, "Indent the JSON answer")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}

	raw := []byte(args[1])
	if args[1] == "-" {
		if raw, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("reading arguments: %w", err)
		}
	}
	var params []json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(raw), &params); err != nil {
		return fmt.Errorf("arguments must be a JSON array: %w", err)
	}

	start := time.Now()
	got, err := p.Solve(params)
	logger.Debug("solved",
		zap.Int("problem", p.ID),
		zap.Int("args", len(params)),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	if err != nil {
		return fmt.Errorf("%s: %w", p.Meta, err)
	}

	var b []byte
	if solvePretty {
		b, err = json.MarshalIndent(got, "", "  ")
	} else {
		b, err = json.Marshal(got)
	}
	if err != nil {
		return fmt.Errorf("encoding answer: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}
