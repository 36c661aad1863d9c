// Package pkg exposes the texpack helpers behind a single import for the
// asset tool.
package pkg

import (
	"context"

	"github.com/provide-io/texpack/pkg/platform"
	"github.com/provide-io/texpack/pkg/texture"
	"github.com/provide-io/texpack/pkg/utils/flags"
	"github.com/provide-io/texpack/pkg/utils/pathname"
)

// GetBinaryDirectory returns <root>/bin/<platform> for the running system.
func GetBinaryDirectory(ctx context.Context, root string) (string, error) {
	return platform.BinaryDirectory(ctx, root)
}

func GetFileExtension(path string) string {
	return pathname.Extension(path)
}

func GetFileName(path string) string {
	return pathname.Name(path)
}

func GetImageSize(path string) (texture.Size, error) {
	return texture.ImageSize(path)
}

// GetMipChainLevels panics for values below 1.
func GetMipChainLevels(value int) int {
	return texture.MipChainLevels(value)
}

func CreateFlagsForTool(toolFlags []string) []string {
	return flags.ForTool(toolFlags)
}

func SplitFlagAndValue(toolFlags []string) []string {
	return flags.SplitValues(toolFlags)
}
