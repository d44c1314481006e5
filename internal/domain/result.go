package domain

import "strings"

// CaseSeparator separates the source file path from the case discriminator
// in a pytest node id, e.g. "tests/test_a.py::TestX::test_y".
const CaseSeparator = "::"

// TestOutcome is the normalized outcome of a single test case.
type TestOutcome string

const (
	OutcomePassed  TestOutcome = "passed"
	OutcomeFailed  TestOutcome = "failed"
	OutcomeSkipped TestOutcome = "skipped"
	// OutcomeError covers errored cases and any outcome label the report
	// uses that we do not recognize.
	OutcomeError TestOutcome = "error"
)

// TestResult represents one executed test case from a pytest report.
type TestResult struct {
	NodeID   string      `json:"nodeid"`             // unique within a run
	Name     string      `json:"name"`               // short case name
	Outcome  TestOutcome `json:"outcome"`
	Duration float64     `json:"duration"`           // seconds
	Message  string      `json:"message,omitempty"`  // failure detail / traceback
	File     string      `json:"file"`               // source file portion of NodeID
}

// SourceFile returns the file portion of a node id (everything before the
// first case separator). A node id without a separator is itself the file.
func SourceFile(nodeID string) string {
	if idx := strings.Index(nodeID, CaseSeparator); idx >= 0 {
		return nodeID[:idx]
	}
	return nodeID
}

// CaseName returns the case portion of a node id (everything after the
// last case separator).
func CaseName(nodeID string) string {
	if idx := strings.LastIndex(nodeID, CaseSeparator); idx >= 0 {
		return nodeID[idx+len(CaseSeparator):]
	}
	return nodeID
}
