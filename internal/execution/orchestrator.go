package execution

import (
	"context"
	"errors"
	"strings"
	"time"

	"pytui/internal/config"
	"pytui/internal/domain"
	"pytui/internal/runner"
)

// Invoker runs the external test runner against one target
type Invoker interface {
	Invoke(ctx context.Context, target, keyword string, timeout time.Duration) (*domain.RunOutput, error)
}

// Parser normalizes a decoded report document into results
type Parser interface {
	Parse(doc any) ([]domain.TestResult, error)
}

// ProgressFunc is called after each invocation completes, before the next
// one starts, with the 1-based completed count, the total count and the
// target just completed.
type ProgressFunc func(completed, total int, target string)

// Orchestrator sequences one pytest invocation per target and accumulates
// the normalized results and raw logs into a RunSummary.
type Orchestrator struct {
	config   *config.Config
	invoker  Invoker
	parser   Parser
	progress ProgressFunc
}

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(cfg *config.Config, invoker Invoker, parser Parser) *Orchestrator {
	return &Orchestrator{
		config:  cfg,
		invoker: invoker,
		parser:  parser,
	}
}

// SetProgress sets the progress callback for the orchestrator
func (o *Orchestrator) SetProgress(fn ProgressFunc) {
	o.progress = fn
}

// Run invokes pytest once per target, in order, one at a time. Per-target
// problems (missing target, absent or unreadable report, timeout) are
// absorbed into the summary's results and combined log so the batch always
// completes. Only integration-level breakage aborts: a malformed report
// document, a runner that cannot start, or context cancellation. Even then
// the returned summary holds everything gathered so far.
func (o *Orchestrator) Run(ctx context.Context, targets []string, keyword string) (*domain.RunSummary, error) {
	summary := &domain.RunSummary{}
	var logs []string
	flush := func() {
		summary.CombinedLog = strings.Join(logs, "\n\n")
	}

	total := len(targets)
	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			flush()
			return summary, err
		}

		out, err := o.invoker.Invoke(ctx, target, keyword, o.config.Timeout)
		if err != nil {
			if errors.Is(err, runner.ErrTargetNotFound) {
				logs = append(logs, "[ERROR] "+err.Error())
				if o.progress != nil {
					o.progress(i+1, total, target)
				}
				continue
			}
			flush()
			return summary, err
		}

		if log := invocationLog(out); log != "" {
			logs = append(logs, log)
		}

		results, perr := o.parser.Parse(out.Report)
		if perr != nil {
			flush()
			return summary, perr
		}
		summary.Results = append(summary.Results, results...)

		if o.progress != nil {
			o.progress(i+1, total, target)
		}
	}

	flush()
	return summary, nil
}

// invocationLog joins one invocation's stdout and stderr, dropping empty
// streams.
func invocationLog(out *domain.RunOutput) string {
	parts := make([]string, 0, 2)
	if s := strings.TrimRight(out.Stdout, "\n"); s != "" {
		parts = append(parts, s)
	}
	if s := strings.TrimRight(out.Stderr, "\n"); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, "\n")
}
