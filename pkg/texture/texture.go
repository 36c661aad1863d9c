// Package texture reads image dimensions and derives mip chain depth.
package texture

import (
	"errors"
	"image"
	"math/bits"
	"os"

	// Header decoders available to ImageSize
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrInvalidMipValue is returned by callers validating input before MipChainLevels
var ErrInvalidMipValue = errors.New("❌ mip chain value must be at least 1")

// Size holds pixel dimensions
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MipChainLevels returns the mip chain depth for the larger dimension.
func (s Size) MipChainLevels() int {
	return MipChainLevels(max(s.Width, s.Height))
}

// ImageSize reads the dimensions of an image file from its header without
// decoding pixel data. Open and decode errors are returned unwrapped;
// unrecognised formats yield image.ErrFormat.
func ImageSize(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: cfg.Width, Height: cfg.Height}, nil
}

// MipChainLevels returns floor(log2(value)) + 1, the number of mip levels of
// a texture whose largest dimension is value.
//
// value must be at least 1; smaller values panic.
func MipChainLevels(value int) int {
	if value < 1 {
		panic(ErrInvalidMipValue)
	}
	return bits.Len(uint(value))
}
