package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"trv/internal/domain"
)

// ErrInvalidScope is returned for a numbering scope other than per_file or per_suite
var ErrInvalidScope = errors.New("invalid numbering scope")

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Processors int

	// Scanning settings
	PathsToIgnore    []string
	TestFileSuffixes []string

	// Naming policy
	NumberingScope domain.Scope
	ZeroPadding    bool
	PadWidth       int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Processors  int
	TestPath    string
	NameFilter  string
	Scope       string
	ZeroPadding bool
	PadWidth    int
	JSON        bool
	NoSave      bool
	Open        bool
	Group       bool
	Save        bool
	Start       int
	Verbose     bool
}

// fileConfig mirrors .trv.yaml; pointers distinguish unset from zero values
type fileConfig struct {
	TestPath         string   `yaml:"test_path"`
	NumberingScope   string   `yaml:"numbering_scope"`
	ZeroPadding      *bool    `yaml:"zero_padding"`
	PadWidth         *int     `yaml:"pad_width"`
	Processors       *int     `yaml:"processors"`
	Ignore           []string `yaml:"ignore"`
	TestFileSuffixes []string `yaml:"test_file_suffixes"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Processors:     DefaultProcessors,
		NumberingScope: DefaultNumberingScope,
		PadWidth:       DefaultPadWidth,
		Flags:          Flags{Processors: DefaultProcessors},
	}
	cfg.PathsToIgnore = append([]string(nil), DefaultPathsToIgnore...)
	cfg.TestFileSuffixes = append([]string(nil), DefaultTestFileSuffixes...)
	return cfg
}

// Load applies the YAML file and the environment on top of the current values
func (c *Config) Load() error {
	if err := c.LoadFile(filepath.Join(c.ProjectPath, ConfigFileName)); err != nil {
		return err
	}
	return c.LoadEnv(filepath.Join(c.ProjectPath, EnvFileName))
}

// LoadFile reads a YAML config file. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.NumberingScope != "" {
		c.NumberingScope = domain.Scope(fc.NumberingScope)
	}
	if fc.ZeroPadding != nil {
		c.ZeroPadding = *fc.ZeroPadding
	}
	if fc.PadWidth != nil {
		c.PadWidth = *fc.PadWidth
	}
	if fc.Processors != nil {
		c.Processors = *fc.Processors
	}
	if len(fc.Ignore) > 0 {
		c.PathsToIgnore = fc.Ignore
	}
	if len(fc.TestFileSuffixes) > 0 {
		c.TestFileSuffixes = fc.TestFileSuffixes
	}
	return nil
}

// LoadEnv loads a dotenv file (if present) and applies the TRV_* variables.
// Variables already set in the process environment win over the file.
func (c *Config) LoadEnv(envPath string) error {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}

	if v := os.Getenv(EnvNumberingScope); v != "" {
		c.NumberingScope = domain.Scope(v)
	}
	if v := os.Getenv(EnvZeroPadding); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvZeroPadding, err)
		}
		c.ZeroPadding = b
	}
	if v := os.Getenv(EnvPadWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPadWidth, err)
		}
		c.PadWidth = n
	}
	if v := os.Getenv(EnvProcessors); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvProcessors, err)
		}
		c.Processors = n
	}
	return nil
}

// Apply stores the flags and overrides the values of flags the user set.
// changed reports whether a flag was given on the command line.
func (c *Config) Apply(flags Flags, changed func(name string) bool) {
	c.Flags = flags
	if changed("project") && flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if changed("processors") && flags.Processors > 0 {
		c.Processors = flags.Processors
	}
	if changed("scope") {
		c.NumberingScope = domain.Scope(flags.Scope)
	}
	if changed("zero-padding") {
		c.ZeroPadding = flags.ZeroPadding
	}
	if changed("pad-width") {
		c.PadWidth = flags.PadWidth
	}
}

// Validate checks the merged configuration
func (c *Config) Validate() error {
	if !c.NumberingScope.Valid() {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidScope, c.NumberingScope, domain.PerFile, domain.PerSuite)
	}
	if c.PadWidth < 0 {
		return fmt.Errorf("pad width must not be negative, got %d", c.PadWidth)
	}
	if c.ZeroPadding && c.PadWidth == 0 {
		return fmt.Errorf("zero padding requires a pad width")
	}
	if c.Processors <= 0 {
		return fmt.Errorf("processors must be positive, got %d", c.Processors)
	}
	return nil
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// Relative flag paths are resolved against the project path
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the absolute path of the saved report, so check and view
// agree on the file regardless of the working directory.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// EffectivePadWidth returns the width names must be padded to, or 0 when padding is off
func (c *Config) EffectivePadWidth() int {
	if !c.ZeroPadding {
		return 0
	}
	return c.PadWidth
}
