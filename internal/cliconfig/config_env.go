package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PETDB_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("file", os.Getenv("PETDB_DATA_FILE"), &cfg.DataFile)
	s.setString("history-file", os.Getenv("PETDB_HISTORY_FILE"), &cfg.HistoryFile)
	s.setString("log-level", os.Getenv("PETDB_LOG_LEVEL"), &cfg.LogLevel)
	s.setBoolFromString("watch", os.Getenv("PETDB_WATCH"), &cfg.Watch)
}
