package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"trv/internal/config"
	"trv/internal/discovery"
	"trv/internal/execution"
	"trv/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	executor  execution.Executor
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	executor execution.Executor,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		executor:  executor,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	testPath := lc.config.GetTestPath()
	files, err := lc.scanner.Scan(testPath)
	if err != nil {
		return err
	}

	files = lc.filter.FilterByName(files, lc.config.Flags.NameFilter)
	if len(files) == 0 {
		lc.formatter.PrintWarning("No test files found in %s", testPath)
		return nil
	}

	ids, _, err := lc.executor.Execute(cmd.Context(), files)
	if err != nil {
		return fmt.Errorf("extract test names: %w", err)
	}

	lc.formatter.PrintIdentifiers(discovery.QualifyFunctions(ids, testPath), lc.config.Flags.Group)
	return nil
}
