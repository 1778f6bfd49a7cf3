package workspace

import (
	"path/filepath"
	"strings"
)

// RelPath computes the relative path from fromDir to toDir as a pure segment
// computation; it never touches the filesystem. Both inputs are expected to
// be absolute; trailing slashes are ignored. The result is one ".." per
// fromDir segment beyond the common leading prefix, followed by the remaining
// toDir segments. Equal directories yield the empty string.
//
// The common prefix is a plain segment-by-segment match from the start: two
// paths that diverge early get no credit for coincidentally equal segment
// names later on.
func RelPath(fromDir, toDir string) string {
	from := splitSegments(fromDir)
	to := splitSegments(toDir)

	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	segments := make([]string, 0, (len(from)-common)+(len(to)-common))
	for i := common; i < len(from); i++ {
		segments = append(segments, "..")
	}
	segments = append(segments, to[common:]...)

	return strings.Join(segments, string(filepath.Separator))
}

// splitSegments cleans dir and splits it into path segments, dropping the
// empty leading segment of absolute paths.
func splitSegments(dir string) []string {
	var segments []string
	for _, s := range strings.Split(filepath.Clean(dir), string(filepath.Separator)) {
		if s != "" && s != "." {
			segments = append(segments, s)
		}
	}
	return segments
}
