package commands

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trv/internal/cli"
	"trv/internal/config"
	"trv/internal/discovery"
	"trv/internal/domain"
	"trv/internal/execution"
	"trv/internal/parser"
	"trv/internal/storage"
	"trv/internal/ui"
	"trv/internal/validator"
)

// ErrViolations is returned when a report contains at least one violation
var ErrViolations = errors.New("test naming violations found")

// Commands holds all CLI commands
type Commands struct {
	Check *CheckCommand
	Lint  *LintCommand
	List  *ListCommand
	Plan  *PlanCommand
	View  *ViewCommand

	logger *zap.Logger
	level  zap.AtomicLevel
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, logger *zap.Logger, level zap.AtomicLevel, out io.Writer) *Commands {
	scanner := discovery.NewScanner(cfg.PathsToIgnore, cfg.TestFileSuffixes)
	filter := discovery.NewFilter()
	extractor := discovery.NewExtractor()
	scheduler := execution.NewRoundRobinScheduler()
	pool := execution.NewWorkerPool(cfg, extractor, scheduler, logger)
	listParser := parser.NewListParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter(cfg, out)
	viewer := ui.NewViolationViewer(jsonStorage)

	return &Commands{
		Check:  NewCheckCommand(cfg, logger, scanner, filter, pool, jsonStorage, formatter, viewer),
		Lint:   NewLintCommand(cfg, logger, listParser, jsonStorage, formatter),
		List:   NewListCommand(cfg, scanner, filter, pool, formatter),
		Plan:   NewPlanCommand(cfg, formatter),
		View:   NewViewCommand(jsonStorage, viewer),
		logger: logger,
		level:  level,
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project", "", "Project root holding .trv.yaml, .env and the report storage")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// prepare merges config file, environment and flags once arguments are parsed
	prepare := func(cmd *cobra.Command, args []string) error {
		if flags.ProjectPath != "" {
			cfg.ProjectPath = flags.ProjectPath
		}
		if err := cfg.Load(); err != nil {
			return err
		}
		cfg.Apply(flags.ToConfigFlags(), cmd.Flags().Changed)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if flags.Verbose {
			c.level.SetLevel(zapcore.DebugLevel)
		}
		c.logger.Debug("configuration loaded",
			zap.String("project", cfg.ProjectPath),
			zap.String("scope", string(cfg.NumberingScope)),
			zap.Bool("zero_padding", cfg.ZeroPadding),
			zap.Int("pad_width", cfg.PadWidth),
			zap.Int("processors", cfg.Processors),
		)
		return nil
	}

	// Check command
	checkCmd := &cobra.Command{
		Use:     "check",
		Short:   "Validate test names in Go test files",
		Long:    "Scan test files, extract subtest names and validate naming, numbering and the 1:5 positive/negative ratio per function",
		Args:    cobra.NoArgs,
		RunE:    c.Check.Execute,
		PreRunE: prepare,
	}
	addPolicyFlags(checkCmd, flags)
	addScanFlags(checkCmd, flags)
	checkCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the report as JSON")
	checkCmd.Flags().BoolVar(&flags.NoSave, "no-save", false, "Do not save the report for the viewer")
	checkCmd.Flags().BoolVar(&flags.Open, "open", false, "Open the violations viewer when the check fails")
	rootCmd.AddCommand(checkCmd)

	// Lint command
	lintCmd := &cobra.Command{
		Use:   "lint [FILE]",
		Short: "Validate a list of test identifiers",
		Long: `Validate test identifiers read from FILE or stdin ("-"), one per line:
  function name
  file function name
  TestFunction/name
  === RUN   TestFunction/name   (go test -v output)`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Lint.Execute,
		PreRunE: prepare,
	}
	addPolicyFlags(lintCmd, flags)
	lintCmd.Flags().BoolVar(&flags.JSON, "json", false, "Print the report as JSON")
	lintCmd.Flags().BoolVar(&flags.Save, "save", false, "Save the report for the viewer")
	rootCmd.AddCommand(lintCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List discovered test names",
		Long:    "Scan test files and list the subtest names found, without validating them",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: prepare,
	}
	addScanFlags(listCmd, flags)
	listCmd.Flags().BoolVarP(&flags.Group, "group", "g", false, "Group names by function under test")
	rootCmd.AddCommand(listCmd)

	// Plan command
	planCmd := &cobra.Command{
		Use:     "plan FUNCTION COUNT",
		Short:   "Print conforming test names for a function",
		Long:    "Lay out COUNT test names for FUNCTION in blocks of 1 positive and 5 negative tests",
		Args:    cobra.ExactArgs(2),
		RunE:    c.Plan.Execute,
		PreRunE: prepare,
	}
	planCmd.Flags().IntVar(&flags.Start, "start", 1, "First sequence number")
	planCmd.Flags().IntVar(&flags.PadWidth, "pad-width", config.DefaultPadWidth, "Digits to zero-pad sequence numbers to (0 disables padding)")
	rootCmd.AddCommand(planCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "View violations interactively",
		Long:    "Display the violations of the last saved report in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.View.Execute,
		PreRunE: prepare,
	}
	rootCmd.AddCommand(viewCmd)
}

func addPolicyFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().StringVarP(&flags.Scope, "scope", "s", string(config.DefaultNumberingScope), "Numbering scope: per_file or per_suite")
	cmd.Flags().BoolVar(&flags.ZeroPadding, "zero-padding", false, "Require fixed-width, zero-padded sequence numbers")
	cmd.Flags().IntVar(&flags.PadWidth, "pad-width", config.DefaultPadWidth, "Digits required when zero padding is on")
}

func addScanFlags(cmd *cobra.Command, flags *cli.Flags) {
	cmd.Flags().IntVarP(&flags.Processors, "processors", "p", config.DefaultProcessors, "Number of files to read in parallel")
	cmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g. '*store*')")
}

func newValidator(cfg *config.Config, logger *zap.Logger) *validator.Validator {
	return validator.New(validator.Options{
		Scope:       cfg.NumberingScope,
		ZeroPadding: cfg.ZeroPadding,
		PadWidth:    cfg.EffectivePadWidth(),
	}, logger)
}

// finish stamps, prints and optionally saves a report, then maps violations to ErrViolations
func finish(cfg *config.Config, formatter *ui.Formatter, st storage.Storage, report *domain.ValidationReport, save bool) error {
	report.Meta.Timestamp = time.Now().Format(time.RFC3339)

	if cfg.Flags.JSON {
		if err := formatter.PrintJSON(report); err != nil {
			return err
		}
	} else {
		formatter.PrintReport(report)
	}

	if save {
		if err := st.Save(report); err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
	}

	if !report.Passed() {
		return ErrViolations
	}
	return nil
}
