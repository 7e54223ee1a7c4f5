// Package texture decodes images and prepares their pixels for GPU upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// DefaultMaxSize caps the longest side of an uploaded image.
const DefaultMaxSize = 4096

// Image is tightly packed 8-bit RGBA pixel data with the bottom row first,
// as glTexImage2D expects.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// Decode decodes any registered image format.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// Load reads and decodes path, downscaling it to fit maxSize.
func Load(path string, maxSize int) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	img, _, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return FromImage(img, maxSize), nil
}

// FitSize scales w x h down, keeping the aspect ratio, so that neither side
// exceeds maxSize. Sizes that already fit, and maxSize <= 0, are returned as is.
func FitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// FromImage converts img to RGBA, resampling it to fit maxSize, and flips it
// vertically for upload.
func FromImage(img image.Image, maxSize int) *Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxSize)

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, b, draw.Src, nil)
	}

	out := &Image{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
	stride := w * 4
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+stride]
		copy(out.Pix[(h-1-y)*stride:], src)
	}
	return out
}

// At returns the RGBA value at x, y with y = 0 at the bottom.
func (img *Image) At(x, y int) [4]uint8 {
	i := (y*img.Width + x) * 4
	return [4]uint8{img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3]}
}
