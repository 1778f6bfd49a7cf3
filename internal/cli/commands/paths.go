package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
)

var pathsCmd = &cobra.Command{
	Use:   "paths [dir]",
	Short: "Print relative paths to sibling workspace members",
	Long: `Print the relative path from the member directory to every other
workspace member, one per line. Outside a workspace the output is empty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPaths,
}

func runPaths(cmd *cobra.Command, args []string) error {
	dir, err := memberDir(args)
	if err != nil {
		return err
	}
	_, resolver, err := setup(dir)
	if err != nil {
		return err
	}

	paths := resolver.ExtraPaths(dir)

	if ui.GlobalFormatter.IsJSON() {
		if paths == nil {
			paths = []string{}
		}
		return ui.GlobalFormatter.Output(struct {
			ExtraPaths []string `json:"extraPaths"`
		}{ExtraPaths: paths})
	}

	for _, p := range paths {
		ui.OutputLine("%s", p)
	}
	return nil
}
