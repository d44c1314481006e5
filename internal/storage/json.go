package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pytui/internal/aggregate"
	"pytui/internal/domain"
)

// Save writes a run summary to the configured JSON output file.
func (s *JSONStorage) Save(summary *domain.RunSummary, targets int, keyword string, duration time.Duration) error {
	counts := aggregate.Summarize(summary.Results)

	record := RunRecord{
		Meta: RunMeta{
			Targets:         targets,
			Passed:          counts.Passed,
			Failed:          counts.Failed,
			Skipped:         counts.Skipped,
			Total:           counts.Total,
			Keyword:         keyword,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Results:     summary.Results,
		CombinedLog: summary.CombinedLog,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Load reads the last run from the configured JSON output file.
func (s *JSONStorage) Load() (*RunRecord, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var record RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &record, nil
}
