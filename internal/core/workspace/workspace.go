// Package workspace resolves uv-style Python workspaces. Given a directory
// inside a workspace member it finds the workspace root, expands the declared
// member patterns against the filesystem, and computes the relative paths
// from that member to every sibling member.
package workspace

import (
	"path/filepath"

	"github.com/aki/uvws/internal/core/logger"
)

const (
	// DefaultConfigFile is the file that may declare a workspace root.
	DefaultConfigFile = "pyproject.toml"
	// DefaultMarker is the section header that makes a configuration file a
	// workspace declaration.
	DefaultMarker = "[tool.uv.workspace]"
)

// Root is a located workspace root: the directory containing the marked
// configuration file and the raw text of that file.
type Root struct {
	Path       string
	ConfigText string
}

// Resolver resolves workspace membership against the real filesystem. The
// zero value is not usable; construct one with NewResolver.
type Resolver struct {
	configFile string
	marker     string
	logger     logger.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithConfigFile overrides the workspace configuration file name.
func WithConfigFile(name string) Option {
	return func(r *Resolver) {
		if name != "" {
			r.configFile = name
		}
	}
}

// WithMarker overrides the workspace marker section.
func WithMarker(marker string) Option {
	return func(r *Resolver) {
		if marker != "" {
			r.marker = marker
		}
	}
}

// WithLogger attaches a logger for debug output.
func WithLogger(log logger.Logger) Option {
	return func(r *Resolver) {
		r.logger = log
	}
}

// NewResolver creates a Resolver with uv defaults.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		configFile: DefaultConfigFile,
		marker:     DefaultMarker,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExtraPaths returns the relative paths from memberRoot to every other member
// of its workspace, in member resolution order. All degenerate inputs are
// normal terminal states that yield an empty list: no workspace above
// memberRoot, no members array in the configuration, and patterns that match
// nothing on disk.
func (r *Resolver) ExtraPaths(memberRoot string) []string {
	root, err := r.FindRoot(memberRoot)
	if err != nil {
		r.logger.Debug("no workspace root", "start", memberRoot)
		return nil
	}

	patterns := memberPatterns(root.ConfigText)
	if len(patterns) == 0 {
		r.logger.Debug("no member patterns declared", "root", root.Path)
		return nil
	}

	self := normalizeDir(memberRoot)
	var paths []string
	for _, dir := range resolveMembers(root.Path, patterns) {
		if normalizeDir(dir) == self {
			continue
		}
		paths = append(paths, RelPath(self, dir))
	}
	r.logger.Debug("resolved extra paths", "root", root.Path, "count", len(paths))
	return paths
}

// MemberDirs expands the member patterns declared at root into existing,
// de-duplicated member directories. Order follows pattern declaration order,
// then filesystem listing order within a pattern.
func (r *Resolver) MemberDirs(root *Root) []string {
	return resolveMembers(root.Path, memberPatterns(root.ConfigText))
}

// MemberPatterns returns the member glob patterns declared at root, verbatim
// and in extraction order.
func (r *Resolver) MemberPatterns(root *Root) []string {
	return memberPatterns(root.ConfigText)
}

// normalizeDir resolves dir to a clean absolute path for identity comparison.
func normalizeDir(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	return abs
}
