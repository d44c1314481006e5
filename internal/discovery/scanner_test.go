package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanner_Scan(t *testing.T) {
	// Create a temporary directory structure for testing
	tmpDir, err := os.MkdirTemp("", "pytui-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Create test directory structure
	testDirs := []string{
		"tests/unit",
		"tests/integration",
		"__pycache__",
		".venv/lib",
	}
	for _, dir := range testDirs {
		if err := os.MkdirAll(filepath.Join(tmpDir, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}

	// Create test files
	testFiles := []string{
		"tests/unit/test_user.py",
		"tests/unit/payment_test.py",
		"tests/integration/test_orders.py",
		"tests/conftest.py",
		"__pycache__/test_cached.py",
		".venv/lib/test_vendored.py",
		"helpers.py",
	}
	for _, file := range testFiles {
		fullPath := filepath.Join(tmpDir, file)
		if err := os.WriteFile(fullPath, []byte("def test_x(): pass"), 0644); err != nil {
			t.Fatalf("failed to create file %s: %v", file, err)
		}
	}

	scanner := NewScanner([]string{"__pycache__"})

	t.Run("scans test files correctly", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 3 {
			t.Errorf("expected 3 test files, got %d: %v", len(results), results)
		}
		for _, r := range results {
			base := filepath.Base(r)
			if base == "conftest.py" || base == "helpers.py" {
				t.Errorf("non-test file included: %s", r)
			}
			if base == "test_cached.py" || base == "test_vendored.py" {
				t.Errorf("ignored directory was scanned: %s", r)
			}
		}
	})

	t.Run("nonexistent root is an error", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(tmpDir, "missing")); err == nil {
			t.Error("expected an error for a missing root")
		}
	})

	t.Run("single test file as root", func(t *testing.T) {
		target := filepath.Join(tmpDir, "tests/unit/test_user.py")
		results, err := scanner.Scan(target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 || results[0] != target {
			t.Errorf("expected the file itself, got %v", results)
		}
	})

	t.Run("non-test file as root is an error", func(t *testing.T) {
		if _, err := scanner.Scan(filepath.Join(tmpDir, "helpers.py")); err == nil {
			t.Error("expected an error for a non-test file root")
		}
	})
}

func TestIsTestFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"test_user.py", true},
		{"payment_test.py", true},
		{"test_.py", true},
		{"conftest.py", false},
		{"test_user.txt", false},
		{"usertest.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isTestFile(tt.name); got != tt.expected {
				t.Errorf("isTestFile(%s) = %v, expected %v", tt.name, got, tt.expected)
			}
		})
	}
}
