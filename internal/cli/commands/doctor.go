package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
	"github.com/aki/uvws/internal/core/git"
	"github.com/aki/uvws/internal/core/workspace"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Check the workspace environment",
	Long: `Run environment checks for the member directory: whether a workspace
root is found, whether members resolve, whether the directory sits in a git
repository, and whether the settings target exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	dir, err := memberDir(args)
	if err != nil {
		return err
	}
	cfg, resolver, err := setup(dir)
	if err != nil {
		return err
	}

	root, rootErr := resolver.FindRoot(dir)
	switch {
	case rootErr == nil:
		ui.Check(true, "workspace root", root.Path)
		members := resolver.MemberDirs(root)
		ui.Check(len(members) > 0, "members resolved", fmt.Sprintf("%d directories", len(members)))
	case errors.Is(rootErr, workspace.ErrNoWorkspace):
		ui.Check(false, "workspace root", fmt.Sprintf("no %s with %s above %s", cfg.Workspace.File, cfg.Workspace.Marker, dir))
	default:
		return rootErr
	}

	if git.IsRepository(dir) {
		detail := ""
		if info, err := git.Info(dir); err == nil {
			detail = info.CurrentBranch
			if !info.IsClean {
				detail += " (dirty)"
			}
		}
		ui.Check(true, "git repository", detail)
	} else {
		ui.Check(false, "git repository", "not inside a repository")
	}

	target := settingsTarget(cfg, dir)
	if _, err := os.Stat(target); err == nil {
		ui.Check(true, "settings target", target)
	} else {
		ui.Check(false, "settings target", target+" (will be created by sync)")
	}

	return nil
}
