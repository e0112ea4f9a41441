package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML decoding. Pointer fields distinguish
// "unset" from false.
type FileConfig struct {
	DataFile    string `toml:"data_file"`
	HistoryFile string `toml:"history_file"`
	LogLevel    string `toml:"log_level"`
	Watch       *bool  `toml:"watch"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.petdb/config.toml, or "" if the user home
// directory is not accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".petdb", "config.toml")
	}
	return ""
}

// DefaultHistoryPath returns ~/.petdb/history, or "" without a home directory.
func DefaultHistoryPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".petdb", "history")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("file", fc.DataFile, &cfg.DataFile)
	s.setString("history-file", fc.HistoryFile, &cfg.HistoryFile)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setBool("watch", fc.Watch, &cfg.Watch)
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
