package wordedit

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Config contains configuration options for the wordedit library
type Config struct {
	// LogLevel controls the verbosity of library logging
	// (trace, debug, info, warn, error, disabled)
	LogLevel string
	// LogFormat selects the log output format (json, console)
	LogFormat string
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration. Logging is disabled
// unless the caller or the environment turns it on.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "disabled",
		LogFormat: "json",
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// WORDEDIT_LOG_LEVEL
	if val := os.Getenv("WORDEDIT_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// WORDEDIT_LOG_FORMAT
	if val := os.Getenv("WORDEDIT_LOG_FORMAT"); val != "" {
		config.LogFormat = val
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return errors.New("invalid log format: " + c.LogFormat)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}
