package commands

import (
	"pytui/internal/cli"
	"pytui/internal/config"
	"pytui/internal/discovery"
	"pytui/internal/execution"
	"pytui/internal/parser"
	"pytui/internal/runner"
	"pytui/internal/storage"
	"pytui/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	View *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	invoker := runner.NewInvoker(cfg)
	reportParser := parser.NewReportParser()
	orchestrator := execution.NewOrchestrator(cfg, invoker, reportParser)
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewViewer()

	return &Commands{
		Run:  NewRunCommand(cfg, filter, orchestrator, jsonStorage, formatter, viewer),
		List: NewListCommand(cfg, filter, formatter),
		View: NewViewCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run pytest and aggregate the results",
		Long:  "Discover pytest files, execute them one target at a time and aggregate the JSON report into a run summary",
		RunE:  c.Run.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Update config with flags after parsing
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	runCmd.Flags().StringVarP(&flags.Keyword, "keyword", "k", "", "Only run tests matching the pytest keyword expression")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_user*.py' or '*payment*')")
	runCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test discovery should start")
	runCmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Maximum wall-clock time per invocation (e.g. 2m); 0 means no limit")
	runCmd.Flags().BoolVar(&flags.Single, "single", false, "Run the whole test path as one pytest invocation instead of one per file")
	runCmd.Flags().BoolVar(&flags.OpenView, "view", false, "Open the interactive viewer when the run finishes")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered test files",
		Long:  "Scan and list all pytest files without executing them",
		RunE:  c.List.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.ApplyFlags(flags.ToConfigFlags())
			return nil
		},
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. 'test_user*.py' or '*payment*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test discovery should start")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the last run interactively",
		Long:  "Display the results of the last test run in an interactive viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)
}
