package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoc(data map[string]interface{}) *Document {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &Document{Path: "test", Format: FormatJSON, Data: data}
}

func TestMergeExtraPathsEmptyDocument(t *testing.T) {
	doc := newDoc(nil)
	var added []string

	err := MergeExtraPaths("extraPaths", []string{"../foo", "../bar"}, &added)(doc)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"../foo", "../bar"}, doc.Data["extraPaths"])
	assert.Equal(t, []string{"../foo", "../bar"}, added)
}

func TestMergeExtraPathsExistingFirst(t *testing.T) {
	doc := newDoc(map[string]interface{}{
		"extraPaths": []interface{}{"../zeta", "../foo"},
	})
	var added []string

	err := MergeExtraPaths("extraPaths", []string{"../foo", "../bar"}, &added)(doc)
	require.NoError(t, err)

	// Existing entries keep their order; only new ones are appended.
	assert.Equal(t, []interface{}{"../zeta", "../foo", "../bar"}, doc.Data["extraPaths"])
	assert.Equal(t, []string{"../bar"}, added)
}

func TestMergeExtraPathsNoNewEntries(t *testing.T) {
	doc := newDoc(map[string]interface{}{
		"extraPaths": []interface{}{"../foo"},
	})
	var added []string

	err := MergeExtraPaths("extraPaths", []string{"../foo"}, &added)(doc)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{"../foo"}, doc.Data["extraPaths"])
	assert.Empty(t, added)
}

func TestMergeExtraPathsNoPaths(t *testing.T) {
	doc := newDoc(nil)

	err := MergeExtraPaths("extraPaths", nil, nil)(doc)
	require.NoError(t, err)

	// The key is still materialized so the settings file ends up well formed.
	assert.Equal(t, []interface{}{}, doc.Data["extraPaths"])
}

func TestMergeExtraPathsNonListValue(t *testing.T) {
	doc := newDoc(map[string]interface{}{
		"extraPaths": "not-a-list",
	})

	err := MergeExtraPaths("extraPaths", []string{"../foo"}, nil)(doc)
	require.NoError(t, err)

	// A malformed value is replaced rather than failing the sync.
	assert.Equal(t, []interface{}{"../foo"}, doc.Data["extraPaths"])
}
