package logger

import (
	"io"
	"os"
	"sync"
	"time"

	// Embed the timezone database so LoadLocation works on hosts without one
	_ "time/tzdata"
)

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" json:"level" mapstructure:"level"`          // trace, debug, info, warn, error
	Format   string `yaml:"format" json:"format" mapstructure:"format"`       // text or json
	Timezone string `yaml:"timezone" json:"timezone" mapstructure:"timezone"` // "Local", "UTC", or IANA name
}

var (
	globalLogger   Logger
	globalLoggerMu sync.Mutex
)

// SetGlobal sets the process-wide logger.
// This should be called once during startup after configuration is loaded.
func SetGlobal(l Logger) {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()
	globalLogger = l
}

// Global returns the process-wide logger, creating an info-level console
// logger on first use if none was set.
func Global() Logger {
	globalLoggerMu.Lock()
	defer globalLoggerMu.Unlock()

	if globalLogger == nil {
		globalLogger = NewSlogLoggerWithFormat(os.Stderr, FormatText, LogLevelInfo, time.Local)
	}
	return globalLogger
}

// New builds a logger from configuration writing to w.
// An unknown timezone falls back to UTC.
func New(cfg LoggingConfig, w io.Writer) *SlogLogger {
	tz := time.UTC
	switch cfg.Timezone {
	case "", "UTC":
	case "Local":
		tz = time.Local
	default:
		if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
			tz = loc
		}
	}

	format := FormatText
	if cfg.Format == string(FormatJSON) {
		format = FormatJSON
	}

	return NewSlogLoggerWithFormat(w, format, ParseLevel(cfg.Level), tz)
}
