package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Runner settings
	PytestBin string
	Timeout   time.Duration

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags after parsing
type Flags struct {
	Keyword    string
	NameFilter string
	TestPath   string
	Timeout    time.Duration
	Single     bool
	OpenView   bool
}

// FileConfig is the shape of the optional .pytui.yml project config file.
type FileConfig struct {
	PytestBin string   `yaml:"pytest_bin"`
	TestPath  string   `yaml:"test_path"`
	Timeout   string   `yaml:"timeout"`
	Ignore    []string `yaml:"ignore"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		PytestBin:      DefaultPytestBin,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load creates a config for the given project path, applying the optional
// .pytui.yml file and environment overrides in that order. Flags are
// applied later by the CLI layer once cobra has parsed them.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	if err := cfg.applyFile(); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// applyFile reads .pytui.yml from the project root when present. A missing
// file is not an error.
func (c *Config) applyFile() error {
	path := filepath.Join(c.ProjectPath, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.PytestBin != "" {
		c.PytestBin = fc.PytestBin
	}
	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("parse config file %s: timeout: %w", path, err)
		}
		c.Timeout = d
	}
	if len(fc.Ignore) > 0 {
		c.PathsToIgnore = append(c.PathsToIgnore, fc.Ignore...)
	}
	return nil
}

// applyEnv applies PYTUI_* environment overrides, loading a .env file from
// the project directory first when one exists.
func (c *Config) applyEnv() {
	envPath := filepath.Join(c.ProjectPath, ".env")
	if err := godotenv.Load(envPath); err != nil {
		// .env file might not exist, that's okay - use environment variables
		_ = err
	}

	if bin := os.Getenv("PYTUI_PYTEST_BIN"); bin != "" {
		c.PytestBin = bin
	}
	if raw := os.Getenv("PYTUI_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			c.Timeout = d
		}
	}
}

// ApplyFlags folds parsed command-line flags into the config. Flags win
// over file and environment values.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
}

// GetTestPath returns the test path, using the flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to ProjectPath if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	// Default: combine project path and test path
	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the full path to the output JSON file (under the project
// so run and view use the same file). Resolves to an absolute path so run and
// view always read/write the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
