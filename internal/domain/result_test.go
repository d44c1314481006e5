package domain

import "testing"

func TestSourceFile(t *testing.T) {
	tests := []struct {
		nodeID   string
		expected string
	}{
		{"tests/test_a.py::test_x", "tests/test_a.py"},
		{"tests/test_a.py::TestLogin::test_ok", "tests/test_a.py"},
		{"tests/test_a.py", "tests/test_a.py"},
	}

	for _, tt := range tests {
		t.Run(tt.nodeID, func(t *testing.T) {
			if got := SourceFile(tt.nodeID); got != tt.expected {
				t.Errorf("SourceFile(%s) = %s, expected %s", tt.nodeID, got, tt.expected)
			}
		})
	}
}

func TestCaseName(t *testing.T) {
	tests := []struct {
		nodeID   string
		expected string
	}{
		{"tests/test_a.py::test_x", "test_x"},
		{"tests/test_a.py::TestLogin::test_ok", "test_ok"},
		{"standalone", "standalone"},
	}

	for _, tt := range tests {
		t.Run(tt.nodeID, func(t *testing.T) {
			if got := CaseName(tt.nodeID); got != tt.expected {
				t.Errorf("CaseName(%s) = %s, expected %s", tt.nodeID, got, tt.expected)
			}
		})
	}
}
