package commands

import (
	"errors"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
	"github.com/aki/uvws/internal/core/workspace"
)

var membersCmd = &cobra.Command{
	Use:   "members [dir]",
	Short: "List the members of the surrounding workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runMembers,
}

type memberInfo struct {
	Name string `json:"name"`
	Rel  string `json:"rel"`
	Path string `json:"path"`
}

func runMembers(cmd *cobra.Command, args []string) error {
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
				Members []memberInfo `json:"members"`
			}{Members: []memberInfo{}})
		}
		ui.Warning("No workspace found above %s", dir)
		return nil
	}
	if err != nil {
		return err
	}

	var members []memberInfo
	for _, d := range resolver.MemberDirs(root) {
		rel, relErr := filepath.Rel(root.Path, d)
		if relErr != nil {
			rel = filepath.Base(d)
		}
		members = append(members, memberInfo{
			Name: filepath.Base(d),
			Rel:  rel,
			Path: d,
		})
	}

	if ui.GlobalFormatter.IsJSON() {
		if members == nil {
			members = []memberInfo{}
		}
		return ui.GlobalFormatter.Output(struct {
			Root    string       `json:"root"`
			Members []memberInfo `json:"members"`
		}{Root: root.Path, Members: members})
	}

	if len(members) == 0 {
		ui.Info("Workspace %s declares no members", root.Path)
		return nil
	}

	ui.OutputLine("Workspace: %s", ui.BoldStyle.Render(root.Path))
	maxPath := ui.TerminalWidth() / 2

	tbl := ui.NewTable("NAME", "REL", "PATH")
	for _, m := range members {
		tbl.AddRow(m.Name, m.Rel, ui.TruncatePath(m.Path, maxPath))
	}
	tbl.Print()
	return nil
}
