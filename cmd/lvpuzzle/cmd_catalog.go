package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/catalog"
	"github.com/katalvlaran/lvpuzzle/problem"
)

var (
	listTag        string
	listDifficulty string
	listTags       bool
	showJSON       bool
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List puzzles, optionally filtered by tag or difficulty",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().StringVar(&listTag, "tag", "", "Only puzzles with this tag")
	cmd.Flags().StringVar(&listDifficulty, "difficulty", "", "Only puzzles of this difficulty (easy, medium, hard)")
	cmd.Flags().BoolVar(&listTags, "tags", false, "List tags with their puzzle counts instead")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	out := cmd.OutOrStdout()

	if listTags {
		counts := cat.Tags()
		tags := make([]string, 0, len(counts))
		for t := range counts {
			tags = append(tags, t)
		}
		sort.Strings(tags)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, t := range tags {
			fmt.Fprintf(tw, "%s\t%d\n", t, counts[t])
		}
		return tw.Flush()
	}

	var filters []catalog.Filter
	if listTag != "" {
		filters = append(filters, catalog.WithTag(listTag))
	}
	if listDifficulty != "" {
		d, err := problem.ParseDifficulty(listDifficulty)
		if err != nil {
			return err
		}
		filters = append(filters, catalog.WithDifficulty(d))
	}

	metas := cat.List(filters...)
	logger.Debug("listing puzzles",
		zap.String("tag", listTag),
		zap.String("difficulty", listDifficulty),
		zap.Int("count", len(metas)))
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSLUG\tDIFFICULTY\tTITLE")
	for _, m := range metas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", m.ID, m.Slug, m.Difficulty, m.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d puzzles\n", len(metas))

	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show the metadata of one puzzle",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cmd.Flags().BoolVar(&showJSON, "json", false, "Print the metadata as JSON")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	p, err := catalog.Default().Lookup(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if showJSON {
		b, err := json.MarshalIndent(struct {
			problem.Meta
			Unordered bool `json:"unordered,omitempty"`
			Nested    bool `json:"nested,omitempty"`
		}{p.Meta, p.Unordered, p.Nested}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	}

	fmt.Fprintf(out, "Problem:    %d. %s\n", p.ID, p.Title)
	fmt.Fprintf(out, "Slug:       %s\n", p.Slug)
	fmt.Fprintf(out, "Difficulty: %s\n", p.Difficulty)
	fmt.Fprintf(out, "Tags:       %s\n", strings.Join(p.Tags, ", "))
	switch {
	case p.Unordered && p.Nested:
		fmt.Fprintln(out, "Answer:     any order, at every level")
	case p.Unordered:
		fmt.Fprintln(out, "Answer:     any order")
	}

	return nil
}
