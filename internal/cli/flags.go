package cli

import (
	"time"

	"pytui/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	Keyword    string
	NameFilter string
	TestPath   string
	Timeout    time.Duration
	Single     bool
	OpenView   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Keyword:    f.Keyword,
		NameFilter: f.NameFilter,
		TestPath:   f.TestPath,
		Timeout:    f.Timeout,
		Single:     f.Single,
		OpenView:   f.OpenView,
	}
}
