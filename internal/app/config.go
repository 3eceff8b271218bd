package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"phonectl/internal/adb"
	"phonectl/internal/domain"
	"phonectl/internal/services/session"
)

// ConfigFileName is the name of the config file inside Home.
const ConfigFileName = "config.yaml"

// Config holds runtime wiring options for building the session context.
type Config struct {
	Home string `yaml:"-"` // config directory, e.g. $HOME/.phonectl

	KeyFile        string             `yaml:"key_file"`
	CredentialFile string             `yaml:"credential_file"`
	DevicesFile    string             `yaml:"devices_file"`
	CurrentFile    string             `yaml:"current_file"`
	ADBPath        string             `yaml:"adb_path"`
	MatchPolicy    domain.MatchPolicy `yaml:"match_policy"`
	ReconnectDelay Duration           `yaml:"reconnect_delay"`
	LogLevel       string             `yaml:"log_level"`
}

// Duration is a time.Duration read from strings such as "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("reconnect_delay: %w", err)
	}
	*d = Duration(v)
	return nil
}

// DefaultConfig returns the settings used when no config file exists. The
// data files live directly in the user's home directory.
func DefaultConfig(home, userHome string) Config {
	return Config{
		Home:           home,
		KeyFile:        filepath.Join(userHome, ".phonectl_key"),
		CredentialFile: filepath.Join(userHome, ".phonectl_auth"),
		DevicesFile:    filepath.Join(userHome, ".phonectl_devices"),
		CurrentFile:    filepath.Join(userHome, ".phonectl_current"),
		ADBPath:        adb.DefaultBinary,
		MatchPolicy:    domain.MatchSubstring,
		ReconnectDelay: Duration(session.DefaultReconnectDelay),
		LogLevel:       zerolog.WarnLevel.String(),
	}
}

// LoadConfig reads path over the defaults. A missing file is not an error.
// Relative data file paths are resolved against home.
func LoadConfig(path, home, userHome string) (Config, error) {
	cfg := DefaultConfig(home, userHome)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	for _, p := range []*string{&cfg.KeyFile, &cfg.CredentialFile, &cfg.DevicesFile, &cfg.CurrentFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(home, *p)
		}
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the services cannot run with.
func (c Config) Validate() error {
	if !c.MatchPolicy.Valid() {
		return fmt.Errorf("match_policy %q: want %q or %q", c.MatchPolicy, domain.MatchSubstring, domain.MatchExact)
	}
	if c.ReconnectDelay < 0 {
		return errors.New("reconnect_delay must not be negative")
	}
	if c.KeyFile == "" || c.CredentialFile == "" || c.DevicesFile == "" || c.CurrentFile == "" {
		return errors.New("data file paths must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level returns the configured log level, warn when unset.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}
	return lvl
}
