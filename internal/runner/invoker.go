package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"pytui/internal/config"
	"pytui/internal/domain"
)

// Invoker executes pytest against a single target and captures its output
// together with the JSON report artifact.
type Invoker struct {
	config *config.Config
}

// NewInvoker creates a new Invoker
func NewInvoker(cfg *config.Config) *Invoker {
	return &Invoker{config: cfg}
}

// Invoke runs pytest for one target (file or directory). keyword, when
// non-empty, is passed through as a -k filter. timeout, when positive,
// bounds the invocation's wall-clock time; on expiry the child is killed
// and ExitCode is TimeoutExitCode.
//
// A non-zero pytest exit code is not an error: it usually just means some
// tests failed. The returned error is reserved for a missing target and
// for the process failing to start at all.
func (iv *Invoker) Invoke(ctx context.Context, target, keyword string, timeout time.Duration) (*domain.RunOutput, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolve target %s: %w", target, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, abs)
	}

	// Each invocation gets its own report location so concurrent or
	// back-to-back invocations never read a stale file.
	tmpDir, err := os.MkdirTemp("", "pytui-*")
	if err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	reportPath := filepath.Join(tmpDir, "report.json")

	args := []string{
		abs,
		"-q",
		"--json-report",
		"--json-report-file=" + reportPath,
	}
	if keyword != "" {
		args = append(args, "-k", keyword)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, iv.config.PytestBin, args...)
	// Run from a stable ancestor of the target, never the target itself,
	// so pytest's path relativization stays predictable.
	cmd.Dir = filepath.Dir(abs)
	cmd.Env = os.Environ()
	// Don't wait on grandchildren holding the output pipes open after the
	// child itself was killed.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	out := &domain.RunOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(runErr),
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		out.ExitCode = TimeoutExitCode
		out.Stderr += fmt.Sprintf("\n[WARN] pytest timed out after %s; no report produced\n", timeout)
		return out, nil
	case errors.Is(ctx.Err(), context.Canceled):
		out.Stderr += "\n[WARN] run cancelled; pytest terminated\n"
		return out, nil
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// pytest never started (binary missing, permission denied, ...).
			return nil, fmt.Errorf("start %s: %w", iv.config.PytestBin, runErr)
		}
	}

	iv.readReport(reportPath, out)
	return out, nil
}

// readReport decodes the report artifact into out.Report. A missing
// artifact leaves Report nil; an undecodable one additionally appends a
// warning to stderr. Neither fails the invocation.
func (iv *Invoker) readReport(reportPath string, out *domain.RunOutput) {
	data, err := os.ReadFile(reportPath)
	if err != nil {
		return
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		out.Stderr += fmt.Sprintf("\n[WARN] failed to parse JSON report: %v\n", err)
		return
	}
	out.Report = doc
}

// exitCode extracts the process exit code from cmd.Run's error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
