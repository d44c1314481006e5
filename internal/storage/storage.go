package storage

import (
	"time"

	"pytui/internal/config"
	"pytui/internal/domain"
)

// RunMeta contains metadata about a persisted run
type RunMeta struct {
	Targets         int     `json:"targets"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Skipped         int     `json:"skipped"`
	Total           int     `json:"total"`
	Keyword         string  `json:"keyword,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunRecord is the complete persisted form of one run
type RunRecord struct {
	Meta        RunMeta             `json:"meta"`
	Results     []domain.TestResult `json:"results"`
	CombinedLog string              `json:"combined_log,omitempty"`
}

// Storage persists and loads the last run (e.g. for the view command).
type Storage interface {
	Save(summary *domain.RunSummary, targets int, keyword string, duration time.Duration) error
	Load() (*RunRecord, error)
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
