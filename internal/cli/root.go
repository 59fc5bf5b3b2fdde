// Package cli implements the headless commands. The interactive flow lives in
// the TUI; these commands exist for quick inspection from scripts and shells.
package cli

import (
	"github.com/spf13/cobra"

	"evalio/internal/config"
	"evalio/internal/engine"
	"evalio/internal/logger"
	"evalio/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "evalio",
	Short:   "Assessment-taking client",
	Long:    `Evalio lets you browse assigned assessment tasks, complete them, and retrieve generated reports. Run without arguments for the interactive interface.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(reportsCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newEngine builds a one-shot engine for a headless command.
func newEngine() (*engine.Engine, error) {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return engine.New(cfg), nil
}
