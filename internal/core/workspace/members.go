package workspace

import (
	"os"
	"path/filepath"
	"regexp"
)

var (
	// membersArrayRe captures the bracketed members array, which may span
	// multiple lines.
	membersArrayRe = regexp.MustCompile(`(?s)members\s*=\s*\[(.*?)\]`)

	doubleQuotedRe = regexp.MustCompile(`"([^"]*)"`)
	singleQuotedRe = regexp.MustCompile(`'([^']*)'`)
)

// memberPatterns extracts the member glob patterns from the workspace
// configuration text. This is a deliberately narrow textual match, not a TOML
// parser: only the members array is load-bearing and everything else in the
// file is ignored. Double-quoted literals are collected first, then
// single-quoted literals, in two separate scans over the array text. A
// missing or malformed array yields nil, never an error.
func memberPatterns(configText string) []string {
	m := membersArrayRe.FindStringSubmatch(configText)
	if m == nil {
		return nil
	}

	var patterns []string
	for _, q := range doubleQuotedRe.FindAllStringSubmatch(m[1], -1) {
		patterns = append(patterns, q[1])
	}
	for _, q := range singleQuotedRe.FindAllStringSubmatch(m[1], -1) {
		patterns = append(patterns, q[1])
	}
	return patterns
}

// resolveMembers expands each pattern rooted at rootPath and keeps the
// matches that exist as directories. Duplicates across patterns are dropped,
// first occurrence wins. Patterns that match nothing, match only files, or
// are syntactically bad globs contribute nothing.
func resolveMembers(rootPath string, patterns []string) []string {
	seen := make(map[string]struct{})
	var dirs []string

	for _, pat := range patterns {
		matches, err := filepath.Glob(filepath.Join(rootPath, pat))
		if err != nil {
			continue
		}
		for _, match := range matches {
			match = filepath.Clean(match)
			if _, ok := seen[match]; ok {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}
			seen[match] = struct{}{}
			dirs = append(dirs, match)
		}
	}
	return dirs
}
