package pathname

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "a/b/file.tar.gz", expected: ".gz"},
		{path: "noext", expected: ""},
		{path: "texture.png", expected: ".png"},
		{path: "dir.d/noext", expected: ""},
		{path: ".bashrc", expected: ""},
		{path: "trailing.", expected: "."},
		{path: "a/b/", expected: ""},
		{path: "", expected: ""},
		{path: "..", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Extension(tt.path))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "a/b/file.tar.gz", expected: "file.tar"},
		{path: "noext", expected: "noext"},
		{path: "textures/albedo.ktx2", expected: "albedo"},
		{path: ".bashrc", expected: ".bashrc"},
		{path: "", expected: ""},
		{path: ".", expected: "."},
		{path: "..", expected: ".."},
		{path: "a/..", expected: ".."},
		{path: "/", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.path))
		})
	}
}

func TestNameExtensionRoundTrip(t *testing.T) {
	paths := []string{
		"file.png",
		filepath.Join("assets", "ui", "button.jpg"),
		filepath.Join("deep", "nested", "dir", "normal.tga"),
		"archive.tar.gz",
		".",
		"..",
		"a" + string(filepath.Separator) + "..",
	}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			assert.Equal(t, filepath.Base(p), Name(p)+Extension(p))
		})
	}
}
