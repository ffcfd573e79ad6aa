package pipeline

import (
	"image"

	"github.com/disintegration/imaging"

	"imageresize/internal/resize"
)

// Resample scales img to exactly size using the Lanczos filter. The source
// image is not modified.
func Resample(img image.Image, size resize.Size) image.Image {
	if img == nil {
		return nil
	}
	return imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)
}

// SizeOf returns the pixel dimensions of img.
func SizeOf(img image.Image) resize.Size {
	b := img.Bounds()
	return resize.Size{Width: b.Dx(), Height: b.Dy()}
}
