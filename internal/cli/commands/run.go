package commands

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"pytui/internal/config"
	"pytui/internal/discovery"
	"pytui/internal/execution"
	"pytui/internal/storage"
	"pytui/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config       *config.Config
	filter       *discovery.Filter
	orchestrator *execution.Orchestrator
	storage      storage.Storage
	formatter    *ui.Formatter
	viewer       *ui.Viewer
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	orchestrator *execution.Orchestrator,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer *ui.Viewer,
) *RunCommand {
	return &RunCommand{
		config:       cfg,
		filter:       filter,
		orchestrator: orchestrator,
		storage:      st,
		formatter:    formatter,
		viewer:       viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	testPath := rc.config.GetTestPath()

	var targets []string
	if rc.config.Flags.Single {
		targets = []string{testPath}
	} else {
		// The scanner is built here so ignore entries from .pytui.yml are in.
		scanner := discovery.NewScanner(rc.config.PathsToIgnore)
		tests, err := scanner.Scan(testPath)
		if err != nil {
			return err
		}
		targets = rc.filter.ByName(tests, rc.config.Flags.NameFilter)
	}

	if len(targets) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	color.Cyan("Running %d target(s) under %s", len(targets), testPath)

	// Create and set progress bar
	progressBar := ui.NewProgressBar(len(targets))
	rc.orchestrator.SetProgress(progressBar.Update)

	// Ctrl+C kills the in-flight pytest process and returns what was
	// gathered so far.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	summary, err := rc.orchestrator.Run(ctx, targets, rc.config.Flags.Keyword)
	duration := time.Since(start)
	progressBar.Finish()

	if err != nil {
		// Show the raw output so a broken pytest setup is diagnosable.
		if summary.CombinedLog != "" {
			fmt.Println(summary.CombinedLog)
		}
		return err
	}

	if len(summary.Results) == 0 {
		color.Yellow("No test results produced")
		if summary.CombinedLog != "" {
			fmt.Println(summary.CombinedLog)
		}
		return nil
	}

	// Save results
	if err := rc.storage.Save(summary, len(targets), rc.config.Flags.Keyword, duration); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	record, err := rc.storage.Load()
	if err != nil {
		return err
	}
	rc.formatter.PrintRunStats(record)

	if rc.config.Flags.OpenView {
		return rc.viewer.View(record)
	}
	return nil
}
