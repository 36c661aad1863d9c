package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// Environment variables controlling logger construction
const (
	EnvLogLevel = "TEXPACK_LOG_LEVEL"
	EnvJSONLog  = "TEXPACK_JSON_LOG"
	EnvLogPath  = "TEXPACK_LOG_PATH"
)

// DefaultPrefix is written in front of every non-JSON log line
const DefaultPrefix = "🧊 "

// NewLogger creates a new hclog logger with standard settings.
//
// A level of the form "json:<level>" forces JSON output regardless of the
// environment, the same way TEXPACK_JSON_LOG=1 does.
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if level == "json" {
		jsonFormat = true
		level = "info"
	} else if rest, ok := strings.CutPrefix(level, "json:"); ok {
		jsonFormat = true
		level = rest
		if level == "" {
			level = "info"
		}
	}

	if !jsonFormat {
		output = NewPrefixWriter(DefaultPrefix, output)
	}

	opts := &hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z", // UTC ISO format
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	}

	return hclog.New(opts)
}

// GetLogLevel returns the configured log level from environment
func GetLogLevel() string {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "warn"
	}
	return level
}

// OpenOutput returns the writer logs should go to: the file named by
// TEXPACK_LOG_PATH when it can be opened for append, stderr otherwise.
// Callers close it when done; closing the stderr fallback is a no-op.
func OpenOutput() io.WriteCloser {
	if logPath := os.Getenv(EnvLogPath); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			return file
		}
	}
	return nopCloser{os.Stderr}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
