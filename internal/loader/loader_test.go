package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feederwatch/dashboard/internal/errors"
	"github.com/feederwatch/dashboard/internal/overlay"
	"github.com/feederwatch/dashboard/internal/taxonomy"
)

func TestLoadSpecies_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadSpecies(filepath.Join("testdata", "species.json"))
	require.NoError(t, err)
	fromYAML, err := LoadSpecies(filepath.Join("testdata", "species.yaml"))
	require.NoError(t, err)

	require.Len(t, fromJSON, 4)
	assert.Equal(t, fromJSON, fromYAML)

	assert.Nil(t, fromJSON[0].ParentID)
	require.NotNil(t, fromJSON[1].ParentID)
	assert.Equal(t, int64(1), *fromJSON[1].ParentID)
	// Omitted fields take their zero values.
	assert.False(t, fromJSON[2].Active)
	assert.Zero(t, fromJSON[2].ObservationCount)
}

func TestLoadSpecies_FeedsTreeBuilder(t *testing.T) {
	species, err := LoadSpecies(filepath.Join("testdata", "species.yaml"))
	require.NoError(t, err)

	roots, err := taxonomy.BuildTree(species)
	require.NoError(t, err)
	roots = taxonomy.ComputeCumulativeCounts(roots)

	require.Len(t, roots, 2)
	assert.Equal(t, 4, roots[0].CumulativeCount)
	assert.Equal(t, 9, roots[1].CumulativeCount)
}

func TestLoadVideo_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := LoadVideo(filepath.Join("testdata", "video.json"))
	require.NoError(t, err)
	fromYAML, err := LoadVideo(filepath.Join("testdata", "video.yaml"))
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "feeder-cam-0612", fromJSON.ID)
	require.Len(t, fromJSON.Tracks, 1)
	require.Len(t, fromJSON.Tracks[0].Frames, 2)
	assert.Equal(t, overlay.BoundingBox{0.2, 0.2, 0.3, 0.3}, fromJSON.Tracks[0].Frames[1].BoundingBox)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	tests := []struct {
		name     string
		path     string
		category errors.ErrorCategory
	}{
		{"unsupported extension", filepath.Join("testdata", "species.csv"), errors.CategoryValidation},
		{"missing file", filepath.Join(dir, "absent.json"), errors.CategoryFileIO},
		{"malformed json", filepath.Join("testdata", "broken.json"), errors.CategoryFileParsing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSpecies(tt.path)
			require.Error(t, err)
			assert.True(t, errors.IsCategory(err, tt.category), "got %v", err)
		})
	}

	t.Run("empty yaml is an empty list", func(t *testing.T) {
		species, err := LoadSpecies(empty)
		require.NoError(t, err)
		assert.NotNil(t, species)
		assert.Empty(t, species)
	})
}

func TestReadSpecies_Stream(t *testing.T) {
	species, err := ReadSpecies(strings.NewReader(`[{"id": 7, "name": "Paridae"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, species, 1)
	assert.Equal(t, "Paridae", species[0].Name)

	_, err = ReadVideo(strings.NewReader("id: [unterminated"), FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryFileParsing))
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.json":    FormatJSON,
		"b.YAML":    FormatYAML,
		"dir/c.yml": FormatYAML,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
}
