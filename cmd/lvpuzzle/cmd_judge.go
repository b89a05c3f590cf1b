package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/judge"
)

var (
	judgeWatch       bool
	judgeParallelism int
	judgeTimeout     time.Duration
	judgeQuiet       bool
)

func newJudgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "judge [dir|file...]",
		Short: "Judge puzzles against YAML/JSONC case files",
		Long: `Run every case of the given suite files and directories and print a
verdict per case (AC, WA, RTE, TLE, IER) followed by totals. Without paths the
configured cases directory is used. The exit code is 1 when any case is not
accepted.

With --watch, a single directory is re-judged whenever one of its suite files
changes, until interrupted.`,
		RunE: runJudge,
	}
	cmd.Flags().BoolVarP(&judgeWatch, "watch", "w", false, "Re-run when suite files change")
	cmd.Flags().IntVarP(&judgeParallelism, "parallel", "p", 0, "Cases run at once (overrides config)")
	cmd.Flags().DurationVar(&judgeTimeout, "timeout", 0, "Time limit per case (overrides config)")
	cmd.Flags().BoolVarP(&judgeQuiet, "quiet", "q", false, "Only print failing cases and totals")

	return cmd
}

func newJudge(cmd *cobra.Command) *judge.Judge {
	par, timeout := cfg.Parallelism, cfg.Timeout
	if cmd.Flags().Changed("parallel") && judgeParallelism > 0 {
		par = judgeParallelism
	}
	if cmd.Flags().Changed("timeout") && judgeTimeout > 0 {
		timeout = judgeTimeout
	}

	return judge.New(
		judge.WithParallelism(par),
		judge.WithTimeout(timeout),
		judge.WithLogger(logger),
	)
}

func runJudge(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.CasesDir}
	}
	j := newJudge(cmd)
	out := cmd.OutOrStdout()

	if judgeWatch {
		if len(paths) != 1 {
			return fmt.Errorf("--watch takes exactly one directory, got %d paths", len(paths))
		}
		if info, err := os.Stat(paths[0]); err != nil || !info.IsDir() {
			return fmt.Errorf("--watch needs a directory: %s", paths[0])
		}
		return j.Watch(cmd.Context(), paths[0], func(rep *judge.Report, err error) {
			switch {
			case err != nil && rep == nil && judge.IsSuiteError(err):
				fmt.Fprintln(out, "invalid case file:", err)
				return
			case err != nil && rep == nil:
				fmt.Fprintln(out, "error:", err)
				return
			}
			printReport(out, rep)
		})
	}

	suites, err := judge.Load(paths...)
	if err != nil {
		if judge.IsSuiteError(err) {
			return fmt.Errorf("invalid case file: %w", err)
		}
		return err
	}
	rep, err := j.Run(cmd.Context(), suites...)
	printReport(out, rep)
	if err != nil {
		return err
	}
	if !rep.Passed() {
		logger.Debug("judge failed", zap.String("run", rep.ID.String()))
		return errFailed
	}

	return nil
}

func printReport(w io.Writer, rep *judge.Report) {
	for _, s := range rep.Suites {
		fmt.Fprintf(w, "%s\n", s.Problem)
		for _, r := range s.Results {
			if judgeQuiet && r.Verdict == judge.Accepted {
				continue
			}
			fmt.Fprintf(w, "  %-3s  %s (%s)\n", r.Verdict, r.Case, r.Elapsed.Round(time.Microsecond))
			if r.Verdict != judge.Accepted && r.Message != "" {
				for _, line := range strings.Split(strings.TrimRight(r.Message, "\n"), "\n") {
					fmt.Fprintf(w, "       %s\n", line)
				}
			}
		}
	}

	parts := make([]string, 0, len(judge.Verdicts))
	for _, v := range judge.Verdicts {
		if n := rep.Totals[v]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", v, n))
		}
	}
	status := "PASS"
	if !rep.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s: %d cases, %s in %s\n", status, rep.Total(), strings.Join(parts, ", "), rep.Elapsed.Round(time.Millisecond))
}
