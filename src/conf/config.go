package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/tanema/minire/src/lerrors"
)

type (
	// Config is the minire configuration file.
	//
	//	log:
	//	  level: warn
	//	  time_format: "%Y-%m-%d %H:%M:%S"
	//	color: auto
	//	repl:
	//	  prompt: "> "
	//	  history_file: ~/.minire_history
	Config struct {
		Log   Log    `yaml:"log"`
		Color string `yaml:"color"`
		REPL  REPL   `yaml:"repl"`
	}
	// Log configures diagnostics logging.
	Log struct {
		Level      string `yaml:"level"`
		TimeFormat string `yaml:"time_format"`
	}
	// REPL configures the interactive session.
	REPL struct {
		Prompt      string `yaml:"prompt"`
		HistoryFile string `yaml:"history_file"`
	}
)

var (
	// LogLevels are the accepted values of log.level.
	LogLevels = []string{"debug", "info", "warn", "error"}
	// ColorModes are the accepted values of color.
	ColorModes = []string{"auto", "always", "never"}
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:   Log{Level: "warn", TimeFormat: DEFAULTTIMEFORMAT},
		Color: "auto",
		REPL:  REPL{Prompt: DEFAULTPROMPT},
	}
}

// Load reads the configuration at path on top of the defaults. An empty path
// looks for CONFIGFILE in the home directory and silently uses the defaults
// if it does not exist. An explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, CONFIGFILE)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "reading config %v", path)
	}
	return Parse(data)
}

// Parse decodes YAML config data on top of the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parsing config")
	}
	if cfg.REPL.HistoryFile != "" {
		cfg.REPL.HistoryFile = expandHome(cfg.REPL.HistoryFile)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated values.
func (cfg Config) Validate() error {
	if !slices.Contains(LogLevels, cfg.Log.Level) {
		return lerrors.New(lerrors.ConfigErr, cfg.Log.Level, 0, fmt.Errorf("unknown log level %q, expected one of %v", cfg.Log.Level, LogLevels))
	}
	if !slices.Contains(ColorModes, cfg.Color) {
		return lerrors.New(lerrors.ConfigErr, cfg.Color, 0, fmt.Errorf("unknown color mode %q, expected one of %v", cfg.Color, ColorModes))
	}
	return nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
