package ui

import (
	"fmt"

	"github.com/fatih/color"
	"pytui/internal/aggregate"
	"pytui/internal/domain"
	"pytui/internal/storage"
)

// Formatter formats and displays run output on the terminal
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintRunStats displays the summary table for a run record
func (f *Formatter) PrintRunStats(record *storage.RunRecord) {
	meta := record.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                    Test Execution Statistics                  ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Targets")
	color.White("%-27d │\n", meta.Targets)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.Passed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.Failed)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.Skipped)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Total")
	color.White("%-27d │\n", meta.Total)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	switch {
	case meta.Total == 0:
		color.Yellow("No tests executed")
	case meta.Failed == 0:
		color.Green("✓ All tests passed!")
	default:
		color.Red("✗ %d test(s) failed", meta.Failed)
		fmt.Println()
		f.printFailuresByFile(record.Results)
	}
}

// printFailuresByFile lists failed and errored cases grouped by source file
func (f *Formatter) printFailuresByFile(results []domain.TestResult) {
	for _, group := range aggregate.GroupByFile(results) {
		bad := group.Summary.Total - group.Summary.Passed - group.Summary.Skipped
		if bad == 0 {
			continue
		}
		color.White("%s  (passed: %d, failed: %d, total: %d)",
			group.File, group.Summary.Passed, group.Summary.Failed, group.Summary.Total)
		for _, r := range group.Results {
			if r.Outcome == domain.OutcomePassed || r.Outcome == domain.OutcomeSkipped {
				continue
			}
			color.Red("  ✗ %s", r.Name)
		}
	}
}

// PrintTestList displays discovered test files
func (f *Formatter) PrintTestList(files []string) {
	color.Cyan("Found %d test file(s):\n", len(files))
	for _, file := range files {
		fmt.Printf("  %s\n", file)
	}
}
