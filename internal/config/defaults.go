package config

import "trv/internal/domain"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultTestPath is the default test path
	DefaultTestPath = "."
	// DefaultOutputJSONFile is the default report file name
	DefaultOutputJSONFile = "naming-report.json"
	// DefaultOutputJSONDir is the default report directory
	DefaultOutputJSONDir = "storage"
	// DefaultProcessors is the default number of extraction workers
	DefaultProcessors = 4
	// DefaultNumberingScope restarts numbering in every file
	DefaultNumberingScope = domain.PerFile
	// DefaultPadWidth is the digit count enforced when zero padding is on
	DefaultPadWidth = 3
	// ConfigFileName is the optional YAML file read from the project path
	ConfigFileName = ".trv.yaml"
	// EnvFileName is the optional dotenv file read from the project path
	EnvFileName = ".env"
)

// Environment variables recognised after the .env file is loaded
const (
	EnvNumberingScope = "TRV_NUMBERING_SCOPE"
	EnvZeroPadding    = "TRV_ZERO_PADDING"
	EnvPadWidth       = "TRV_PAD_WIDTH"
	EnvProcessors     = "TRV_PROCESSORS"
)

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"testdata",
	"storage",
	"dist",
}

// DefaultTestFileSuffixes select which files are scanned for test names
var DefaultTestFileSuffixes = []string{
	"_test.go",
}
