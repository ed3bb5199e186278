package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feederwatch/dashboard/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.False(t, settings.Debug)
	assert.Equal(t, "info", settings.Logging.Level)
	assert.Equal(t, "text", settings.Logging.Format)
	assert.Equal(t, "all", settings.Directory.StatusFilter)
	assert.Equal(t, 5*time.Minute, settings.Directory.CacheTTL)
	assert.InDelta(t, 0.3, settings.Overlay.MaxFrameDelta, 1e-12)
	assert.Same(t, settings, GetSettings())
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
debug: true
logging:
  level: debug
  format: json
directory:
  statusfilter: regional
  cachettl: 30s
overlay:
  maxframedelta: 0.5
`)
	t.Setenv("FEEDERWATCH_OVERLAY_MAXFRAMEDELTA", "0.1")

	settings, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.True(t, settings.Debug)
	assert.Equal(t, "json", settings.Logging.Format)
	assert.Equal(t, "regional", settings.Directory.StatusFilter)
	assert.Equal(t, 30*time.Second, settings.Directory.CacheTTL)
	assert.InDelta(t, 0.1, settings.Overlay.MaxFrameDelta, 1e-12)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
logging:
  format: xml
directory:
  statusfilter: nearby
overlay:
  maxframedelta: -1
`)

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.True(t, errors.IsCategory(err, errors.CategoryConfiguration))

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{"valid", func(*Settings) {}, false},
		{"empty filter means all", func(s *Settings) { s.Directory.StatusFilter = "" }, false},
		{"bad level", func(s *Settings) { s.Logging.Level = "loud" }, true},
		{"negative ttl", func(s *Settings) { s.Directory.CacheTTL = -time.Second }, true},
		{"zero ttl", func(s *Settings) { s.Directory.CacheTTL = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{
				Directory: DirectorySettings{StatusFilter: "observed", CacheTTL: time.Minute},
				Overlay:   OverlaySettings{MaxFrameDelta: 0.3},
			}
			tt.mutate(s)
			if tt.wantErr {
				require.Error(t, s.Validate())
			} else {
				require.NoError(t, s.Validate())
			}
		})
	}
}
