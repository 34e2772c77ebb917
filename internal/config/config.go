// Package config resolves run settings from command-line flags, PUB2TEX_*
// environment variables, the global config file, and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/changgoo/pub2tex/internal/cv"
)

// EnvPrefix is prepended to every setting's environment variable.
const EnvPrefix = "PUB2TEX"

// Setting keys, shared by flags, environment and config file.
const (
	KeyDataDir    = "data_dir"
	KeyInput      = "input"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
	KeyADSLink    = "ads_link"
	KeyMaxAuthors = "max_authors"
)

// Defaults.
const (
	DefaultDataDir   = "data"
	DefaultInput     = "pubs.json"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

// ErrInvalidSettings is returned when a resolved setting is unusable.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the resolved options for one run.
type Settings struct {
	DataDir    string `mapstructure:"data_dir" json:"data_dir"`
	Input      string `mapstructure:"input" json:"input"`
	LogLevel   string `mapstructure:"log_level" json:"log_level"`
	LogFormat  string `mapstructure:"log_format" json:"log_format"`
	ADSLink    string `mapstructure:"ads_link" json:"ads_link"`
	MaxAuthors int    `mapstructure:"max_authors" json:"max_authors"`
}

// NewViper returns a viper instance with defaults and environment binding
// in place. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDataDir, DefaultDataDir)
	v.SetDefault(KeyInput, DefaultInput)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyADSLink, cv.DefaultADSLink)
	v.SetDefault(KeyMaxAuthors, cv.DefaultMaxAuthors)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfigFile merges the YAML file at path into v. An empty path
// means the global config file; a missing global file is not an error.
func ReadConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = GlobalConfigPath()
		if path == "" {
			return nil
		}
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Load resolves the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	s.DataDir = ExpandTilde(strings.TrimSpace(s.DataDir))

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first unusable setting.
func (s Settings) Validate() error {
	if s.DataDir == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSettings, KeyDataDir)
	}
	if strings.TrimSpace(s.Input) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidSettings, KeyInput)
	}
	if s.MaxAuthors < 1 {
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidSettings, KeyMaxAuthors, s.MaxAuthors)
	}
	return nil
}

// InputPath returns the publication records file. A relative input is
// resolved against the data directory.
func (s Settings) InputPath() string {
	input := ExpandTilde(s.Input)
	if filepath.IsAbs(input) {
		return input
	}
	return filepath.Join(s.DataDir, input)
}
