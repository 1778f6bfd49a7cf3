package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelPath(t *testing.T) {
	tests := []struct {
		name     string
		from     string
		to       string
		expected string
	}{
		{
			name:     "sibling directories",
			from:     "/w/packages/bar",
			to:       "/w/packages/foo",
			expected: "../foo",
		},
		{
			name:     "same directory",
			from:     "/w/packages/foo",
			to:       "/w/packages/foo",
			expected: "",
		},
		{
			name:     "pure descent",
			from:     "/a/b/c",
			to:       "/a/b/c/d",
			expected: "d",
		},
		{
			name:     "pure ascent",
			from:     "/a/b/c/d",
			to:       "/a/b",
			expected: "../..",
		},
		{
			name:     "no common ancestor below root",
			from:     "/one/two",
			to:       "/three/four",
			expected: "../../three/four",
		},
		{
			name:     "trailing slashes ignored",
			from:     "/w/packages/bar/",
			to:       "/w/packages/foo/",
			expected: "../foo",
		},
		{
			name: "no credit for later coincident segments",
			from: "/a/x/shared",
			to:   "/b/y/shared",
			// Prefix match stops at the first mismatch even though both
			// paths end in "shared".
			expected: "../../../b/y/shared",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RelPath(tt.from, tt.to))
		})
	}
}
