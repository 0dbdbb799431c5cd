package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"trv/internal/cli"
	"trv/internal/cli/commands"
	"trv/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := &cobra.Command{
		Use:           "trv",
		Short:         "Test naming and ratio validator",
		Long:          `Validate that unit test names follow the "{number}_{positive|negative}" convention, are numbered in increasing order, and keep 1 positive test for every 5 negative tests per function.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	logger, level, err := cli.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	// Create initial config with defaults; file, env and flags are merged before each command
	cfg := config.New()

	var flags cli.Flags

	cmds := commands.NewCommands(cfg, logger, level, os.Stdout)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// violations were already reported
		if !errors.Is(err, commands.ErrViolations) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
