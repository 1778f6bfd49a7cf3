package commands

import (
	"github.com/spf13/cobra"

	"github.com/aki/uvws/internal/cli/ui"
	"github.com/aki/uvws/internal/settings"
)

var syncDryRun bool

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Merge sibling member paths into the settings file",
	Long: `Compute the extra paths for the member directory and merge them into
the configured settings file (pyrightconfig.json by default). Existing entries
are preserved; computed paths are appended only if not already present.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "Show what would be merged without writing")
}

func runSync(cmd *cobra.Command, args []string) error {
	dir, err := memberDir(args)
	if err != nil {
		return err
	}
	cfg, resolver, err := setup(dir)
	if err != nil {
		return err
	}

	paths := resolver.ExtraPaths(dir)
	if len(paths) == 0 {
		if ui.GlobalFormatter.IsJSON() {
			return ui.GlobalFormatter.Output(struct {
				Added []string `json:"added"`
			}{Added: []string{}})
		}
		ui.Info("No sibling members to merge")
		return nil
	}

	format, err := settings.ParseFormat(cfg.Settings.Format)
	if err != nil {
		return err
	}
	target := settingsTarget(cfg, dir)

	if syncDryRun {
		if ui.GlobalFormatter.IsJSON() {
			return ui.GlobalFormatter.Output(struct {
				Target string   `json:"target"`
				Paths  []string `json:"paths"`
				DryRun bool     `json:"dryRun"`
			}{Target: target, Paths: paths, DryRun: true})
		}
		ui.Info("Would merge %d path(s) into %s", len(paths), target)
		for _, p := range paths {
			ui.OutputLine("  %s", p)
		}
		return nil
	}

	var added []string
	file := settings.NewFile(target, format)
	err = file.Update(cmd.Context(), settings.MergeExtraPaths(cfg.Settings.Key, paths, &added))
	if err != nil {
		return err
	}

	if ui.GlobalFormatter.IsJSON() {
		if added == nil {
			added = []string{}
		}
		return ui.GlobalFormatter.Output(struct {
			Target string   `json:"target"`
			Added  []string `json:"added"`
		}{Target: target, Added: added})
	}

	if len(added) == 0 {
		ui.Info("%s already up to date", target)
		return nil
	}
	ui.Success("Added %d path(s) to %s", len(added), target)
	for _, p := range added {
		ui.OutputLine("  %s", p)
	}
	return nil
}
