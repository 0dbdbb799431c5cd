package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trv/internal/config"
	"trv/internal/discovery"
	"trv/internal/execution"
	"trv/internal/storage"
	"trv/internal/ui"
)

// CheckCommand handles the check command
type CheckCommand struct {
	config    *config.Config
	logger    *zap.Logger
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  *execution.WorkerPool
	storage   storage.Storage
	formatter *ui.Formatter
	viewer    ui.Viewer
}

// NewCheckCommand creates a new CheckCommand
func NewCheckCommand(
	cfg *config.Config,
	logger *zap.Logger,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor *execution.WorkerPool,
	st storage.Storage,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *CheckCommand {
	return &CheckCommand{
		config:    cfg,
		logger:    logger,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		storage:   st,
		formatter: formatter,
		viewer:    viewer,
	}
}

// Execute runs the command
func (cc *CheckCommand) Execute(cmd *cobra.Command, args []string) error {
	testPath := cc.config.GetTestPath()
	files, err := cc.scanner.Scan(testPath)
	if err != nil {
		return err
	}

	files = cc.filter.FilterByName(files, cc.config.Flags.NameFilter)
	if len(files) == 0 && !cc.config.Flags.JSON {
		cc.formatter.PrintWarning("No test files found in %s", testPath)
	}

	if len(files) > 0 && !cc.config.Flags.JSON {
		cc.executor.SetProgress(ui.NewProgressBar(len(files)))
	}

	ids, duration, err := cc.executor.Execute(cmd.Context(), files)
	if err != nil {
		return fmt.Errorf("extract test names: %w", err)
	}

	ids = discovery.QualifyFunctions(ids, testPath)
	report := newValidator(cc.config, cc.logger).Validate(ids)
	report.Meta.Source = "check"
	report.Meta.Files = len(files)
	report.Meta.Duration = duration.String()

	err = finish(cc.config, cc.formatter, cc.storage, report, !cc.config.Flags.NoSave)
	if errors.Is(err, ErrViolations) && cc.config.Flags.Open && cc.viewer != nil {
		if viewErr := cc.viewer.View(report); viewErr != nil {
			return viewErr
		}
	}
	return err
}
