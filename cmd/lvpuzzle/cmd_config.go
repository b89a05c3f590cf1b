package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configForce bool

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the lvpuzzle config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the --config path",
		Long: `Write the effective settings (built-in defaults, the existing file if
any, then LVPUZZLE_* environment variables) as YAML to the --config path.
An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}
	initCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}
	if err := cfg.Save(configPath); err != nil {
		return err
	}
	logger.Debug("config written", zap.String("path", configPath))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)

	return nil
}
