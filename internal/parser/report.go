package parser

import (
	"errors"
	"fmt"
	"strings"

	"pytui/internal/domain"
)

// ErrMalformedReport is returned when the report document is not a JSON
// object at the top level. That points at a broken runner integration
// rather than a per-test condition, so it is the one normalization error
// that propagates.
var ErrMalformedReport = errors.New("report document is not a JSON object")

// ReportParser normalizes a decoded pytest JSON report into TestResults
type ReportParser struct{}

// NewReportParser creates a new ReportParser
func NewReportParser() *ReportParser {
	return &ReportParser{}
}

// Parse turns a decoded report document into an ordered list of results.
// A nil document or one without a recognizable "tests" list yields an
// empty list, not an error. Missing optional fields on a case get
// documented defaults; only an entry with no node id is skipped.
func (p *ReportParser) Parse(doc any) ([]domain.TestResult, error) {
	if doc == nil {
		return nil, nil
	}

	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrMalformedReport, doc)
	}

	rawTests, ok := m["tests"].([]any)
	if !ok {
		return nil, nil
	}

	results := make([]domain.TestResult, 0, len(rawTests))
	for _, rawCase := range rawTests {
		entry, ok := rawCase.(map[string]any)
		if !ok {
			continue
		}
		nodeID := stringField(entry, "nodeid")
		if nodeID == "" {
			continue
		}

		name := firstKeyword(entry)
		if name == "" {
			name = domain.CaseName(nodeID)
		}

		file := stringField(entry, "file")
		if file == "" {
			file = domain.SourceFile(nodeID)
		}

		results = append(results, domain.TestResult{
			NodeID:   nodeID,
			Name:     name,
			Outcome:  mapOutcome(stringField(entry, "outcome")),
			Duration: floatField(entry, "duration"),
			Message:  callMessage(entry),
			File:     file,
		})
	}

	return results, nil
}

// mapOutcome maps a report outcome label case-insensitively. Unrecognized
// labels become OutcomeError rather than being dropped.
func mapOutcome(raw string) domain.TestOutcome {
	switch strings.ToLower(raw) {
	case "passed":
		return domain.OutcomePassed
	case "failed":
		return domain.OutcomeFailed
	case "skipped":
		return domain.OutcomeSkipped
	default:
		return domain.OutcomeError
	}
}

// firstKeyword returns the first entry of the case's "keywords" list,
// which pytest-json-report populates with the display name.
func firstKeyword(entry map[string]any) string {
	keywords, ok := entry["keywords"].([]any)
	if !ok || len(keywords) == 0 {
		return ""
	}
	name, _ := keywords[0].(string)
	return name
}

// callMessage returns the long representation of the call phase failure,
// empty when the case has none (e.g. it passed).
func callMessage(entry map[string]any) string {
	call, ok := entry["call"].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(call, "longrepr")
}

func stringField(entry map[string]any, key string) string {
	v, _ := entry[key].(string)
	return v
}

func floatField(entry map[string]any, key string) float64 {
	v, _ := entry[key].(float64)
	return v
}
