package cliconfig

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %v, want %v", cfg.DataFile, DefaultDataFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
	if cfg.Watch {
		t.Error("Watch = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "missing data file",
			config:  Config{LogLevel: "info"},
			wantErr: true,
		},
		{
			name:    "blank data file",
			config:  Config{DataFile: "   "},
			wantErr: true,
		},
		{
			name:    "empty log level allowed",
			config:  Config{DataFile: "pets.txt"},
			wantErr: false,
		},
		{
			name:    "unknown log level",
			config:  Config{DataFile: "pets.txt", LogLevel: "loud"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"", zerolog.WarnLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		got, err := cfg.Level()
		if err != nil {
			t.Errorf("Level(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Level(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
