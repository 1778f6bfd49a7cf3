// Package commands implements the uvws CLI.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
	"github.com/aki/uvws/internal/core/logger"
)

var (
	formatFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "uvws",
	Short: "Resolve uv workspace sibling paths for language tooling",
	Long: `uvws resolves uv-style Python workspaces: starting from any member
directory it finds the workspace root, expands the declared member patterns,
and computes the relative paths a language-analysis tool needs to see the
sibling members.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format, err := ui.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		if err := ui.SetGlobalFormatter(format); err != nil {
			return err
		}
		level, err := logger.ParseLevel(logLevelFlag)
		if err != nil {
			return err
		}
		log = logger.New(logger.WithLevel(level))
		return nil
	},
}

// log is the command-level logger, configured in PersistentPreRunE.
var log = logger.Nop()

func init() {
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format (pretty, json)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(membersCmd)
	rootCmd.AddCommand(workspaceRootCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
