// Package git inspects the repository surrounding a workspace root, for
// doctor-style environment reporting.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
)

// RepositoryInfo describes the repository containing a directory.
type RepositoryInfo struct {
	Path          string
	CurrentBranch string
	RemoteURL     string
	IsClean       bool
}

// IsRepository reports whether dir sits inside a git repository.
func IsRepository(dir string) bool {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// Info opens the repository containing dir and reports its state. A
// repository without commits yields an empty branch rather than an error.
func Info(dir string) (*RepositoryInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	info := &RepositoryInfo{Path: dir}

	if ref, err := repo.Head(); err == nil {
		info.CurrentBranch = ref.Name().Short()
	}

	if remotes, err := repo.Remotes(); err == nil && len(remotes) > 0 {
		cfg := remotes[0].Config()
		if len(cfg.URLs) > 0 {
			info.RemoteURL = cfg.URLs[0]
		}
	}

	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.IsClean = status.IsClean()
		}
	}

	return info, nil
}
