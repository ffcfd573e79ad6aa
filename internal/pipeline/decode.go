package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	webp "github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/avif"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DetectFormat returns the MIME type sniffed from the leading bytes of data.
func DetectFormat(data []byte) string {
	return mimetype.Detect(data).String()
}

// ValidateAndDecode reads up to maxBytes from r, sniffs the content type and
// decodes it. Images wider or taller than maxDim are rejected. The raw bytes
// are returned so callers can look at metadata such as EXIF.
func ValidateAndDecode(r io.Reader, maxBytes int64, maxDim int) (image.Image, string, []byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	// read up to maxBytes+1 to detect overflow
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, "", nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, "", nil, ErrTooLarge
	}

	ct := DetectFormat(data)

	var img image.Image
	var decodeErr error

	br := bytes.NewReader(data)
	switch ct {
	case "image/jpeg":
		img, decodeErr = jpeg.Decode(br)
	case "image/png":
		img, decodeErr = png.Decode(br)
	case "image/gif":
		img, decodeErr = gif.Decode(br)
	case "image/bmp":
		img, decodeErr = bmp.Decode(br)
	case "image/tiff":
		img, decodeErr = tiff.Decode(br)
	case "image/webp":
		img, decodeErr = webp.Decode(br)
	case "image/avif":
		img, decodeErr = avif.Decode(br)
	default:
		return nil, ct, nil, ErrNotAnImage
	}
	if decodeErr != nil {
		return nil, ct, nil, decodeErr
	}

	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	if w <= 0 || h <= 0 || w > maxDim || h > maxDim {
		return nil, ct, nil, ErrInvalidDimensions
	}

	return img, ct, data, nil
}

// DecodeFile opens path and decodes it with ValidateAndDecode. Every failure
// is wrapped with ErrDecode.
func DecodeFile(path string, maxBytes int64, maxDim int) (image.Image, string, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer f.Close()

	img, ct, data, err := ValidateAndDecode(f, maxBytes, maxDim)
	if err != nil {
		return nil, ct, nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return img, ct, data, nil
}
