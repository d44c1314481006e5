package main

import (
	"fmt"
	"os"

	"pytui/internal/cli"
	"pytui/internal/cli/commands"
	"pytui/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var projectPath string

	// Create root command
	rootCmd := &cobra.Command{
		Use:     "pytui",
		Short:   "pytest runner with aggregated results",
		Long:    `A terminal companion for pytest. Runs tests through pytest's JSON report, aggregates pass/fail results per file and lets you browse failure logs interactively.`,
		Version: version,
	}
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project", "p", config.DefaultProjectPath, "Project root directory")

	// Config is loaded lazily so the --project flag is already parsed.
	cfg := config.New()
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(projectPath)
		if err != nil {
			return err
		}
		// Fold file/env values into the shared config the commands hold.
		*cfg = *loaded
		return nil
	}

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
