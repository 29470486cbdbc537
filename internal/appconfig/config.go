package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config is the interactx CLI configuration.
type Config struct {
	Prompt       string    `mapstructure:"prompt" yaml:"prompt"`
	Mode         string    `mapstructure:"mode" yaml:"mode"`
	HistoryLimit int       `mapstructure:"history_limit" yaml:"history_limit"`
	HistoryFile  string    `mapstructure:"history_file" yaml:"history_file"`
	Completions  []string  `mapstructure:"completions" yaml:"completions"`
	SSH          SSHConfig `mapstructure:"ssh" yaml:"ssh"`
}

// SSHConfig configures the SSH demo server.
type SSHConfig struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	HostKeyPath string `mapstructure:"host_key_path" yaml:"host_key_path"`
}

// Editing modes accepted in the config file.
const (
	ModeSingle = "single"
	ModeMulti  = "multi"
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		Prompt:       ";;> ",
		Mode:         ModeMulti,
		HistoryLimit: 0,
		HistoryFile:  filepath.Join(home, ".interactx", "history"),
		Completions:  []string{},
		SSH: SSHConfig{
			Addr:        ":27423",
			HostKeyPath: filepath.Join(home, ".interactx", "ssh_host_key"),
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".interactx", "config.yaml"), nil
}

// Validate checks field values after unmarshalling.
func Validate(cfg Config) error {
	switch cfg.Mode {
	case ModeSingle, ModeMulti:
	default:
		return fmt.Errorf("unsupported mode %q; expected %q or %q", cfg.Mode, ModeSingle, ModeMulti)
	}
	if cfg.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative")
	}
	return nil
}
