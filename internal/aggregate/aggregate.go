// Package aggregate provides pure views over an already-produced sequence
// of test results: summary counters, per-file grouping, substring search
// and log lookup. Nothing here performs I/O or mutates its input.
package aggregate

import (
	"strings"

	"pytui/internal/domain"
)

// Summary holds the outcome counters for a set of results. Skipped and
// errored cases count toward Total only.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// FileGroup is the ordered subsequence of results that share one source
// file, with counters scoped to the group.
type FileGroup struct {
	File    string
	Results []domain.TestResult
	Summary Summary
}

// Summarize computes the outcome counters over results.
func Summarize(results []domain.TestResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case domain.OutcomePassed:
			s.Passed++
		case domain.OutcomeFailed:
			s.Failed++
		case domain.OutcomeSkipped:
			s.Skipped++
		}
	}
	return s
}

// GroupByFile partitions results by source file. Groups appear in
// first-seen order of the file, and each group preserves the original
// relative order of its results.
func GroupByFile(results []domain.TestResult) []FileGroup {
	var order []string
	byFile := make(map[string][]domain.TestResult)

	for _, r := range results {
		if _, seen := byFile[r.File]; !seen {
			order = append(order, r.File)
		}
		byFile[r.File] = append(byFile[r.File], r)
	}

	groups := make([]FileGroup, 0, len(order))
	for _, file := range order {
		groups = append(groups, FileGroup{
			File:    file,
			Results: byFile[file],
			Summary: Summarize(byFile[file]),
		})
	}
	return groups
}

// Search filters results to those whose name or node id contains query,
// case-insensitively. An empty query returns results unchanged.
func Search(results []domain.TestResult, query string) []domain.TestResult {
	if query == "" {
		return results
	}

	q := strings.ToLower(query)
	var filtered []domain.TestResult
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.NodeID), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// FindLog returns the message of the first result whose name equals name.
// The second return is false when no result matches. First-match semantics
// are the deliberate tie-break when the same display name occurs in more
// than one file.
func FindLog(results []domain.TestResult, name string) (string, bool) {
	for _, r := range results {
		if r.Name == name {
			return r.Message, true
		}
	}
	return "", false
}
