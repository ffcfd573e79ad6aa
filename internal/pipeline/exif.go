package pipeline

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// AutoOrient applies the EXIF orientation found in data to img. Missing or
// unreadable EXIF leaves img untouched; it is never an error.
func AutoOrient(img image.Image, data []byte) image.Image {
	if img == nil || len(data) == 0 {
		return img
	}

	x, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return img
	}
	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return img
	}
	orient, err := tag.Int(0)
	if err != nil {
		return img
	}

	return orientationTransform(img, orient)
}

// orientationTransform maps EXIF orientation values 1-8 to flips and
// rotations. Unknown values return img.
func orientationTransform(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		// rotate 90 CW
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
