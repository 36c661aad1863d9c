package platform

import "errors"

// ErrExecutableNotFound is returned when a bundled tool is missing from the binary directory
var ErrExecutableNotFound = errors.New("❌ bundled executable not found")
