// Package pathname splits file paths into name and extension.
package pathname

import (
	"path/filepath"
	"strings"
)

// Extension returns the extension of the last path element, dot included.
// Names without a dot, and names whose only dot is the leading one
// (".bashrc"), have no extension.
//
//	Extension("a/b/file.tar.gz") => ".gz"
//	Extension("noext")           => ""
func Extension(path string) string {
	base := filepath.Base(path)
	if isDotOrRoot(base) {
		return ""
	}

	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return base[idx:]
}

// Name returns the last path element without its extension. Dot elements
// come back unchanged; the empty path and the root have no name.
//
//	Name("a/b/file.tar.gz") => "file.tar"
//	Name("a/..")            => ".."
func Name(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, Extension(path))
}

func isDotOrRoot(base string) bool {
	return base == "." || base == ".." || base == string(filepath.Separator)
}
