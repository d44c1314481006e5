package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultPytestBin is the default pytest executable to invoke
	DefaultPytestBin = "pytest"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".pytui"
	// ConfigFileName is the optional per-project config file
	ConfigFileName = ".pytui.yml"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"__pycache__",
	".pytest_cache",
	".tox",
	".venv",
	"venv",
	"node_modules",
	"site-packages",
	"build",
	"dist",
}
