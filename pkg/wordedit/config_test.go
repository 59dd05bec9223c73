package wordedit

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.LogLevel != "disabled" {
		t.Errorf("LogLevel = %q, want %q", config.LogLevel, "disabled")
	}
	if config.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", config.LogFormat, "json")
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		t.Setenv("WORDEDIT_LOG_LEVEL", "")
		t.Setenv("WORDEDIT_LOG_FORMAT", "")

		config := ConfigFromEnvironment()
		if config.LogLevel != "disabled" {
			t.Errorf("LogLevel = %q, want %q", config.LogLevel, "disabled")
		}
		if config.LogFormat != "json" {
			t.Errorf("LogFormat = %q, want %q", config.LogFormat, "json")
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("WORDEDIT_LOG_LEVEL", "debug")
		t.Setenv("WORDEDIT_LOG_FORMAT", "console")

		config := ConfigFromEnvironment()
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want %q", config.LogLevel, "debug")
		}
		if config.LogFormat != "console" {
			t.Errorf("LogFormat = %q, want %q", config.LogFormat, "console")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{
			name:   "default",
			config: DefaultConfig(),
		},
		{
			name:   "debug console",
			config: &Config{LogLevel: "debug", LogFormat: "console"},
		},
		{
			name:   "trace json",
			config: &Config{LogLevel: "trace", LogFormat: "json"},
		},
		{
			name:    "unknown level",
			config:  &Config{LogLevel: "chatty", LogFormat: "json"},
			wantErr: "invalid log level",
		},
		{
			name:    "unknown format",
			config:  &Config{LogLevel: "info", LogFormat: "xml"},
			wantErr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want containing %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestGetGlobalConfigReturnsCopy(t *testing.T) {
	before := GetGlobalConfig().LogLevel

	config := GetGlobalConfig()
	config.LogLevel = before + "-mutated"

	if got := GetGlobalConfig().LogLevel; got != before {
		t.Errorf("global LogLevel = %q after mutating a copy, want %q", got, before)
	}
}

func TestSetGlobalConfig(t *testing.T) {
	old := GetGlobalConfig()
	defer SetGlobalConfig(old)

	SetGlobalConfig(&Config{LogLevel: "warn", LogFormat: "console"})

	got := GetGlobalConfig()
	if got.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", got.LogLevel, "warn")
	}
	if got.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want %q", got.LogFormat, "console")
	}
}
