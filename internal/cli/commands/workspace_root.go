package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
	"github.com/aki/uvws/internal/core/workspace"
)

var workspaceRootCmd = &cobra.Command{
	Use:   "root [dir]",
	Short: "Print the workspace root for a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWorkspaceRoot,
}

func runWorkspaceRoot(cmd *cobra.Command, args []string) error {
	dir, err := memberDir(args)
	if err != nil {
		return err
	}
	_, resolver, err := setup(dir)
	if err != nil {
		return err
	}

	root, err := resolver.FindRoot(dir)
	if errors.Is(err, workspace.ErrNoWorkspace) {
		if ui.GlobalFormatter.IsJSON() {
			return ui.GlobalFormatter.Output(struct {
				Found bool `json:"found"`
			}{Found: false})
		}
		ui.Warning("No workspace found above %s", dir)
		return nil
	}
	if err != nil {
		return err
	}

	if ui.GlobalFormatter.IsJSON() {
		return ui.GlobalFormatter.Output(struct {
			Found bool   `json:"found"`
			Path  string `json:"path"`
		}{Found: true, Path: root.Path})
	}

	ui.OutputLine("%s", root.Path)
	return nil
}
