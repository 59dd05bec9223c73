package wordedit

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalLogger     zerolog.Logger
	globalLoggerMu   sync.RWMutex
	globalLoggerOnce sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		globalLogger = newLoggerFromConfig(GetGlobalConfig())
	})
}

func init() {
	initGlobalLogger()
}

func newLoggerFromConfig(config *Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.Disabled
	}
	if level == zerolog.Disabled || level == zerolog.NoLevel {
		return zerolog.Nop()
	}

	var w io.Writer = os.Stderr
	if config.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetLogger installs the logger used by library operations. The default
// logger discards everything unless WORDEDIT_LOG_LEVEL is set.
func SetLogger(logger zerolog.Logger) {
	globalLoggerMu.Lock()
	globalLogger = logger
	globalLoggerMu.Unlock()
}

// Logger returns the logger used by library operations.
func Logger() zerolog.Logger {
	initGlobalLogger()
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// UpdateLoggerFromConfig rebuilds the global logger from the current
// global configuration
func UpdateLoggerFromConfig() {
	initGlobalLogger()
	SetLogger(newLoggerFromConfig(GetGlobalConfig()))
}
