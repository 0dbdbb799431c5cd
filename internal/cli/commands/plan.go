package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"trv/internal/config"
	"trv/internal/naming"
	"trv/internal/ui"
)

// PlanCommand handles the plan command
type PlanCommand struct {
	config    *config.Config
	formatter *ui.Formatter
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(cfg *config.Config, formatter *ui.Formatter) *PlanCommand {
	return &PlanCommand{
		config:    cfg,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *PlanCommand) Execute(cmd *cobra.Command, args []string) error {
	function := args[0]
	count, err := strconv.Atoi(args[1])
	if err != nil || count <= 0 {
		return fmt.Errorf("count must be a positive integer, got %q", args[1])
	}
	if pc.config.Flags.Start < 0 {
		return fmt.Errorf("start must not be negative, got %d", pc.config.Flags.Start)
	}

	cases := naming.Plan(function, count, pc.config.Flags.Start, pc.config.PadWidth)
	pc.formatter.PrintPlan(function, cases)
	return nil
}
