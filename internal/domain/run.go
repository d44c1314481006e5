package domain

// RunOutput captures everything one pytest invocation produced.
type RunOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Report is the decoded JSON report artifact, nil when the runner
	// produced none or the artifact could not be decoded.
	Report any
}

// RunSummary accumulates the normalized results of a whole run (one or
// more invocations). Counters are always derived from Results on demand,
// never stored here.
type RunSummary struct {
	// Results preserves invocation order and, within an invocation, the
	// report's own order.
	Results []TestResult `json:"results"`
	// CombinedLog concatenates every invocation's stdout/stderr in
	// invocation order, separated by blank lines.
	CombinedLog string `json:"combined_log,omitempty"`
}
