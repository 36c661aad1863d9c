// Package config resolves texpack settings from flags and environment
package config

import (
	"os"
	"path/filepath"

	"github.com/provide-io/texpack/pkg/logging"
)

// EnvRoot names the project root holding bin/<platform>/
const EnvRoot = "TEXPACK_ROOT"

// Config holds resolved settings. Flag values win over environment values.
type Config struct {
	Root     string
	LogLevel string
}

// Load builds a Config from explicit flag values, falling back to the
// environment and then to defaults.
func Load(rootFlag, logLevelFlag string) (*Config, error) {
	root, err := resolveRoot(rootFlag)
	if err != nil {
		return nil, err
	}

	logLevel := logLevelFlag
	if logLevel == "" {
		logLevel = logging.GetLogLevel()
	}

	return &Config{
		Root:     root,
		LogLevel: logLevel,
	}, nil
}

// resolveRoot picks the flag, then TEXPACK_ROOT, then the working directory,
// and returns it as an absolute path.
func resolveRoot(rootFlag string) (string, error) {
	root := rootFlag
	if root == "" {
		root = os.Getenv(EnvRoot)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return cwd, nil
	}
	return filepath.Abs(root)
}
