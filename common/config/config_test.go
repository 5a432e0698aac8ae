package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/ui/layout"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	a := assert.New(t)
	cfg := DefaultConfig()

	a.Nil(cfg.Validate())
	a.Equal("images", cfg.Directory)
	a.Equal([]string{"*.jpg"}, cfg.Patterns)
	a.Equal("INFO", cfg.LogLevel)

	theme, err := cfg.Theme()
	a.Nil(err)
	a.Equal(layout.DefaultTheme(), theme)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	a := assert.New(t)

	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	a.Nil(err)
	a.Equal(DefaultConfig(), cfg)
}

func TestLoadConfigFile_MergesOverDefaults(t *testing.T) {
	a := assert.New(t)
	path := writeConfig(t, `
directory: /photos
patterns: ["*.jpg", "*.jpeg"]
gallery:
  columns: 5
viewer:
  width: 640
theme:
  background: "#101010"
`)

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	a.Equal("/photos", cfg.Directory)
	a.Equal([]string{"*.jpg", "*.jpeg"}, cfg.Patterns)
	a.Equal("INFO", cfg.LogLevel)
	a.Equal(5, cfg.Gallery.Columns)
	a.Equal(150, cfg.Gallery.ThumbnailWidth)
	a.Equal(640, cfg.Viewer.Width)
	a.Equal(300, cfg.Viewer.Height)
	a.Equal("My Image Gallery", cfg.Window.Title)
	a.Equal("#101010", cfg.Palette.Background)
	a.Equal("#000000", cfg.Palette.Label)

	theme, err := cfg.Theme()
	a.Nil(err)
	a.Equal(5, theme.Columns)
	a.Equal(apitype.SizeOf(640, 300), theme.FullImage)
	a.Equal(color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}, theme.Background)
	a.Equal(color.RGBA{A: 0xFF}, theme.LabelColor)
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "gallery: [1, 2"},
		{"zero columns", "gallery:\n  columns: 0\n"},
		{"negative spacing", "gallery:\n  spacing: -1\n"},
		{"zero thumbnail", "gallery:\n  thumbnail_width: 0\n"},
		{"negative viewer", "viewer:\n  height: -5\n"},
		{"invalid pattern", "patterns: [\"[*.jpg\"]\n"},
		{"no patterns", "patterns: []\n"},
		{"bad color", "theme:\n  label: red\n"},
		{"bad log level", "log_level: LOUD\n"},
		{"empty directory", "directory: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFile(writeConfig(t, tt.content))
			assert.NotNil(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadConfigFile_Unreadable(t *testing.T) {
	a := assert.New(t)

	cfg, err := LoadConfigFile(t.TempDir())

	a.NotNil(err)
	a.Nil(cfg)
}
