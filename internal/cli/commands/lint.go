package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trv/internal/config"
	"trv/internal/parser"
	"trv/internal/storage"
	"trv/internal/ui"
)

// LintCommand handles the lint command
type LintCommand struct {
	config    *config.Config
	logger    *zap.Logger
	parser    parser.Parser
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewLintCommand creates a new LintCommand
func NewLintCommand(cfg *config.Config, logger *zap.Logger, p parser.Parser, st storage.Storage, formatter *ui.Formatter) *LintCommand {
	return &LintCommand{
		config:    cfg,
		logger:    logger,
		parser:    p,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *LintCommand) Execute(cmd *cobra.Command, args []string) error {
	source := "-"
	if len(args) > 0 {
		source = args[0]
	}

	var in io.Reader = cmd.InOrStdin()
	if source != "-" {
		f, err := os.Open(source)
		if err != nil {
			return fmt.Errorf("open identifiers: %w", err)
		}
		defer f.Close()
		in = f
	}

	ids, err := lc.parser.Parse(in)
	if err != nil {
		return err
	}
	lc.logger.Debug("identifiers read", zap.String("source", source), zap.Int("count", len(ids)))

	report := newValidator(lc.config, lc.logger).Validate(ids)
	report.Meta.Source = "lint"

	return finish(lc.config, lc.formatter, lc.storage, report, lc.config.Flags.Save)
}
