package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"vincit.fi/image-gallery/api/apitype"
	"vincit.fi/image-gallery/backend/library"
	"vincit.fi/image-gallery/common/logger"
	"vincit.fi/image-gallery/ui/layout"
)

const DefaultDirectory = "images"

// Config is the optional YAML configuration. Values missing from the file
// keep their defaults.
type Config struct {
	Directory string   `yaml:"directory"`
	Patterns  []string `yaml:"patterns"`
	LogLevel  string   `yaml:"log_level"`
	LogFile   string   `yaml:"log_file"`

	Gallery struct {
		Columns         int `yaml:"columns"`
		ThumbnailWidth  int `yaml:"thumbnail_width"`
		ThumbnailHeight int `yaml:"thumbnail_height"`
		Spacing         int `yaml:"spacing"`
		LabelSpacing    int `yaml:"label_spacing"`
	} `yaml:"gallery"`

	Viewer struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewer"`

	Window struct {
		Title         string `yaml:"title"`
		GalleryWidth  int    `yaml:"gallery_width"`
		GalleryHeight int    `yaml:"gallery_height"`
		ViewerWidth   int    `yaml:"viewer_width"`
		ViewerHeight  int    `yaml:"viewer_height"`
	} `yaml:"window"`

	Palette struct {
		Background string `yaml:"background"`
		Label      string `yaml:"label"`
		Hover      string `yaml:"hover"`
	} `yaml:"theme"`
}

func DefaultConfig() *Config {
	theme := layout.DefaultTheme()
	cfg := &Config{
		Directory: DefaultDirectory,
		Patterns:  append([]string{}, library.DefaultPatterns...),
		LogLevel:  logger.INFO.String(),
	}

	cfg.Gallery.Columns = theme.Columns
	cfg.Gallery.ThumbnailWidth = theme.Thumbnail.Width()
	cfg.Gallery.ThumbnailHeight = theme.Thumbnail.Height()
	cfg.Gallery.Spacing = theme.Spacing
	cfg.Gallery.LabelSpacing = theme.LabelSpacing

	cfg.Viewer.Width = theme.FullImage.Width()
	cfg.Viewer.Height = theme.FullImage.Height()

	cfg.Window.Title = theme.Title
	cfg.Window.GalleryWidth = theme.GalleryWindow.Width()
	cfg.Window.GalleryHeight = theme.GalleryWindow.Height()
	cfg.Window.ViewerWidth = theme.ViewerWindow.Width()
	cfg.Window.ViewerHeight = theme.ViewerWindow.Height()

	cfg.Palette.Background = "#F4F4F4"
	cfg.Palette.Label = "#000000"
	cfg.Palette.Hover = "#FFFFFF40"
	return cfg
}

// DefaultConfigPath is ~/.config/image-gallery/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "image-gallery", "config.yaml"), nil
}

// LoadConfigFile reads the configuration from path. A missing file is not an
// error and yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Debug.Printf("No config file at '%s', using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Debug.Printf("Loaded config from '%s'", path)
	return cfg, nil
}

func (s *Config) Validate() error {
	if s.Directory == "" {
		return errors.New("directory must not be empty")
	}
	if len(s.Patterns) == 0 {
		return errors.New("at least one file pattern is required")
	}
	for _, pattern := range s.Patterns {
		if _, err := library.CompilePattern(pattern); err != nil {
			return err
		}
	}
	if !logger.IsValidLogLevel(s.LogLevel) {
		return fmt.Errorf("unknown log level '%s'", s.LogLevel)
	}
	if s.Gallery.Columns < 1 {
		return fmt.Errorf("gallery columns must be at least 1, got %d", s.Gallery.Columns)
	}
	if s.Gallery.Spacing < 0 || s.Gallery.LabelSpacing < 0 {
		return errors.New("gallery spacing must not be negative")
	}

	sizes := []struct {
		name          string
		width, height int
	}{
		{"thumbnail", s.Gallery.ThumbnailWidth, s.Gallery.ThumbnailHeight},
		{"viewer", s.Viewer.Width, s.Viewer.Height},
		{"gallery window", s.Window.GalleryWidth, s.Window.GalleryHeight},
		{"viewer window", s.Window.ViewerWidth, s.Window.ViewerHeight},
	}
	for _, size := range sizes {
		if !apitype.SizeOf(size.width, size.height).IsValid() {
			return fmt.Errorf("%s size must be positive, got %dx%d", size.name, size.width, size.height)
		}
	}

	_, err := s.Colors()
	return err
}

// Colors parses the theme colors in background, label, hover order.
func (s *Config) Colors() ([3]color.RGBA, error) {
	var colors [3]color.RGBA
	for i, value := range []string{s.Palette.Background, s.Palette.Label, s.Palette.Hover} {
		c, err := layout.ParseHexColor(value)
		if err != nil {
			return colors, err
		}
		colors[i] = c
	}
	return colors, nil
}

// Theme converts the configuration to the typed UI theme.
func (s *Config) Theme() (layout.Theme, error) {
	theme := layout.DefaultTheme()
	colors, err := s.Colors()
	if err != nil {
		return theme, err
	}

	theme.Title = s.Window.Title
	theme.Columns = s.Gallery.Columns
	theme.Thumbnail = apitype.SizeOf(s.Gallery.ThumbnailWidth, s.Gallery.ThumbnailHeight)
	theme.Spacing = s.Gallery.Spacing
	theme.LabelSpacing = s.Gallery.LabelSpacing
	theme.FullImage = apitype.SizeOf(s.Viewer.Width, s.Viewer.Height)
	theme.GalleryWindow = apitype.SizeOf(s.Window.GalleryWidth, s.Window.GalleryHeight)
	theme.ViewerWindow = apitype.SizeOf(s.Window.ViewerWidth, s.Window.ViewerHeight)
	theme.Background = colors[0]
	theme.LabelColor = colors[1]
	theme.HoverColor = colors[2]
	return theme, nil
}
