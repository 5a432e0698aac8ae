package common

import (
	"fmt"

	"github.com/spf13/pflag"
	"vincit.fi/image-gallery/common/config"
	"vincit.fi/image-gallery/common/logger"
)

const (
	flagDirectory = "dir"
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFile   = "log-file"
	flagColumns   = "columns"
	flagBrowse    = "browse"
)

type Params struct {
	flags      *pflag.FlagSet
	directory  string
	configPath string
	logLevel   string
	logFile    string
	columns    int
	browse     bool
}

// BindParams registers the command line flags to flags. Values are available
// after the flag set has been parsed.
func BindParams(flags *pflag.FlagSet) *Params {
	params := &Params{flags: flags}
	flags.StringVarP(&params.directory, flagDirectory, "d", config.DefaultDirectory, "Directory to scan for images")
	flags.StringVarP(&params.configPath, flagConfig, "c", "", "Path to the YAML config file (default ~/.config/image-gallery/config.yaml)")
	flags.StringVar(&params.logLevel, flagLogLevel, logger.INFO.String(), "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	flags.StringVar(&params.logFile, flagLogFile, "", "Also write the log to this file")
	flags.IntVar(&params.columns, flagColumns, 3, "Number of thumbnail columns")
	flags.BoolVarP(&params.browse, flagBrowse, "b", false, "Choose the image directory with a folder dialog")
	return params
}

func (s *Params) Directory() string {
	return s.directory
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

func (s *Params) Columns() int {
	return s.columns
}

func (s *Params) Browse() bool {
	return s.browse
}

// ConfigPath returns the config file given on the command line or the
// default location. It is empty when there is no home directory to look in.
func (s *Params) ConfigPath() string {
	if s.configPath != "" {
		return s.configPath
	}
	path, err := config.DefaultConfigPath()
	if err != nil {
		logger.Warn.Printf("No default config file location, using defaults: %s", err)
		return ""
	}
	return path
}

// LoadConfig loads the config file and overrides it with the flags that were
// set explicitly.
func (s *Params) LoadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := s.ConfigPath(); path != "" {
		var err error
		if cfg, err = config.LoadConfigFile(path); err != nil {
			return nil, err
		}
	}
	if err := s.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Params) Apply(cfg *config.Config) error {
	if s.changed(flagDirectory) {
		cfg.Directory = s.directory
	}
	if s.changed(flagLogLevel) {
		cfg.LogLevel = s.logLevel
	}
	if s.changed(flagLogFile) {
		cfg.LogFile = s.logFile
	}
	if s.changed(flagColumns) {
		cfg.Gallery.Columns = s.columns
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

func (s *Params) changed(name string) bool {
	return s.flags != nil && s.flags.Changed(name)
}
