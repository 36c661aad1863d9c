package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	tests := []struct {
		name     string
		writes   []string
		expected string
	}{
		{
			name:     "single line",
			writes:   []string{"hello\n"},
			expected: "> hello\n",
		},
		{
			name:     "two lines in one write",
			writes:   []string{"a\nb\n"},
			expected: "> a\n> b\n",
		},
		{
			name:     "line split across writes",
			writes:   []string{"par", "tial\n"},
			expected: "> partial\n",
		},
		{
			name:     "incomplete line is held",
			writes:   []string{"done\nnot yet"},
			expected: "> done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pw := NewPrefixWriter("> ", &buf)
			for _, w := range tt.writes {
				n, err := pw.Write([]byte(w))
				require.NoError(t, err)
				assert.Equal(t, len(w), n)
			}
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestNewLogger_Text(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var buf bytes.Buffer
	logger := NewLogger("texpack-test", "debug", &buf)
	logger.Debug("resolved", "tag", "linux")

	out := buf.String()
	assert.Contains(t, out, DefaultPrefix)
	assert.Contains(t, out, "texpack-test")
	assert.Contains(t, out, "tag=linux")
}

func TestNewLogger_LevelFilters(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var buf bytes.Buffer
	logger := NewLogger("texpack-test", "warn", &buf)
	logger.Info("hidden")

	assert.Empty(t, buf.String())
	assert.Equal(t, hclog.Warn, logger.GetLevel())
}

func TestNewLogger_JSON(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		level string
	}{
		{name: "env switch", env: "1", level: "info"},
		{name: "json level prefix", env: "", level: "json:info"},
		{name: "bare json level", env: "", level: "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvJSONLog, tt.env)

			var buf bytes.Buffer
			logger := NewLogger("texpack-test", tt.level, &buf)
			logger.Info("hello", "key", "value")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "hello", entry["@message"])
			assert.Equal(t, "value", entry["key"])
		})
	}
}

func TestNewLogger_JSONPrefixMustBeExact(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var buf bytes.Buffer
	logger := NewLogger("texpack-test", "jsonx", &buf)
	logger.Warn("plain")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, DefaultPrefix), "expected text output, got %q", out)
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestOpenOutput_File(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "texpack.log")
	t.Setenv(EnvLogPath, logPath)

	out := OpenOutput()
	_, err := out.Write([]byte("first\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	// A closed file rejects further writes.
	_, err = out.Write([]byte("late\n"))
	assert.Error(t, err)

	// Reopening appends.
	out = OpenOutput()
	_, err = out.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpenOutput_StderrFallback(t *testing.T) {
	t.Setenv(EnvLogPath, "")

	out := OpenOutput()
	require.NoError(t, out.Close())
	require.NoError(t, out.Close())

	t.Setenv(EnvLogPath, filepath.Join(t.TempDir(), "missing-dir", "texpack.log"))
	out = OpenOutput()
	require.NoError(t, out.Close())
}

func TestGetLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, "warn", GetLogLevel())

	t.Setenv(EnvLogLevel, "trace")
	assert.Equal(t, "trace", GetLogLevel())
}
