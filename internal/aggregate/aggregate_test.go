package aggregate

import (
	"reflect"
	"testing"

	"pytui/internal/domain"
)

func sampleResults() []domain.TestResult {
	return []domain.TestResult{
		{NodeID: "tests/test_a.py::test_login", Name: "test_login", Outcome: domain.OutcomePassed, File: "tests/test_a.py"},
		{NodeID: "tests/test_a.py::test_logout", Name: "test_logout", Outcome: domain.OutcomeFailed, Message: "assert False", File: "tests/test_a.py"},
		{NodeID: "tests/test_b.py::test_payment", Name: "test_payment", Outcome: domain.OutcomeSkipped, File: "tests/test_b.py"},
		{NodeID: "tests/test_a.py::test_flaky", Name: "test_flaky", Outcome: domain.OutcomeError, Message: "setup blew up", File: "tests/test_a.py"},
		{NodeID: "tests/test_b.py::test_login", Name: "test_login", Outcome: domain.OutcomeFailed, Message: "other file login", File: "tests/test_b.py"},
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		results  []domain.TestResult
		expected Summary
	}{
		{
			name:     "empty",
			results:  nil,
			expected: Summary{},
		},
		{
			name: "one of each outcome",
			results: []domain.TestResult{
				{Outcome: domain.OutcomePassed},
				{Outcome: domain.OutcomeFailed},
				{Outcome: domain.OutcomeSkipped},
			},
			expected: Summary{Passed: 1, Failed: 1, Skipped: 1, Total: 3},
		},
		{
			name:     "errored cases count toward total only",
			results:  sampleResults(),
			expected: Summary{Passed: 1, Failed: 2, Skipped: 1, Total: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.results)
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
			if got.Total != len(tt.results) {
				t.Errorf("total %d != len(results) %d", got.Total, len(tt.results))
			}
			if got.Passed+got.Failed+got.Skipped > got.Total {
				t.Errorf("counters exceed total: %+v", got)
			}
		})
	}
}

func TestGroupByFile(t *testing.T) {
	results := sampleResults()
	groups := GroupByFile(results)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	t.Run("first-seen file order", func(t *testing.T) {
		if groups[0].File != "tests/test_a.py" || groups[1].File != "tests/test_b.py" {
			t.Errorf("unexpected group order: %s, %s", groups[0].File, groups[1].File)
		}
	})

	t.Run("per-group counters", func(t *testing.T) {
		if groups[0].Summary != (Summary{Passed: 1, Failed: 1, Total: 3}) {
			t.Errorf("unexpected counters for group a: %+v", groups[0].Summary)
		}
		if groups[1].Summary != (Summary{Failed: 1, Skipped: 1, Total: 2}) {
			t.Errorf("unexpected counters for group b: %+v", groups[1].Summary)
		}
	})

	t.Run("partition preserves every result exactly once in order", func(t *testing.T) {
		var flattened []domain.TestResult
		for _, g := range groups {
			flattened = append(flattened, g.Results...)
		}
		if len(flattened) != len(results) {
			t.Fatalf("flattened %d results, expected %d", len(flattened), len(results))
		}
		wantA := []string{"test_login", "test_logout", "test_flaky"}
		for i, name := range wantA {
			if groups[0].Results[i].Name != name {
				t.Errorf("group a position %d: expected %s, got %s", i, name, groups[0].Results[i].Name)
			}
		}
	})

	t.Run("empty input yields no groups", func(t *testing.T) {
		if got := GroupByFile(nil); len(got) != 0 {
			t.Errorf("expected no groups, got %d", len(got))
		}
	})

	t.Run("single file with mixed outcomes is one group", func(t *testing.T) {
		trio := []domain.TestResult{
			{NodeID: "tests/test_a.py::test_1", Name: "test_1", Outcome: domain.OutcomePassed, File: "tests/test_a.py"},
			{NodeID: "tests/test_a.py::test_2", Name: "test_2", Outcome: domain.OutcomeFailed, File: "tests/test_a.py"},
			{NodeID: "tests/test_a.py::test_3", Name: "test_3", Outcome: domain.OutcomeSkipped, File: "tests/test_a.py"},
		}
		want := Summary{Passed: 1, Failed: 1, Skipped: 1, Total: 3}
		if got := Summarize(trio); got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
		grouped := GroupByFile(trio)
		if len(grouped) != 1 {
			t.Fatalf("expected one group, got %d", len(grouped))
		}
		if len(grouped[0].Results) != 3 || grouped[0].Summary != want {
			t.Errorf("expected the same counters scoped to the group, got %+v", grouped[0].Summary)
		}
	})
}

func TestSearch(t *testing.T) {
	results := sampleResults()

	t.Run("empty query is the identity", func(t *testing.T) {
		got := Search(results, "")
		if !reflect.DeepEqual(got, results) {
			t.Errorf("expected input unchanged")
		}
	})

	t.Run("case-insensitive over name", func(t *testing.T) {
		upper := Search(results, "LOGIN")
		lower := Search(results, "login")
		if !reflect.DeepEqual(upper, lower) {
			t.Errorf("case should not matter")
		}
		if len(lower) != 2 {
			t.Errorf("expected 2 matches, got %d", len(lower))
		}
	})

	t.Run("matches node id as well", func(t *testing.T) {
		got := Search(results, "test_b.py")
		if len(got) != 2 {
			t.Errorf("expected 2 matches on node id, got %d", len(got))
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		if got := Search(results, "nonexistent"); len(got) != 0 {
			t.Errorf("expected no matches, got %d", len(got))
		}
	})
}

func TestFindLog(t *testing.T) {
	results := sampleResults()

	t.Run("returns message of matching test", func(t *testing.T) {
		message, found := FindLog(results, "test_logout")
		if !found {
			t.Fatal("expected a match")
		}
		if message != "assert False" {
			t.Errorf("unexpected message: %q", message)
		}
	})

	t.Run("duplicate names resolve to the first match", func(t *testing.T) {
		message, found := FindLog(results, "test_login")
		if !found {
			t.Fatal("expected a match")
		}
		// test_login exists in both files; the first (passed, empty message) wins.
		if message != "" {
			t.Errorf("expected first match's empty message, got %q", message)
		}
	})

	t.Run("unknown name reports no match", func(t *testing.T) {
		if _, found := FindLog(results, "test_missing"); found {
			t.Error("expected no match")
		}
	})
}
