package pipeline

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"
	"strings"

	webp "github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gen2brain/avif"
)

// DefaultJPEGQuality is the quality used for JPEG output.
const DefaultJPEGQuality = 95

// DefaultWebPQuality is the standard quality used for lossy WebP encoding.
const DefaultWebPQuality = 80

// DefaultAVIFQuality is the standard quality used for AVIF encoding.
const DefaultAVIFQuality = 60

// DefaultAVIFSpeed is the standard speed used for AVIF encoding.
const DefaultAVIFSpeed = 6

// Output format names returned by FormatFromPath.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatGIF  = "gif"
	FormatTIFF = "tiff"
	FormatBMP  = "bmp"
	FormatWebP = "webp"
	FormatAVIF = "avif"
)

// EncodeOptions tunes the lossy encoders. Zero values select the defaults.
type EncodeOptions struct {
	JPEGQuality int
	WebPQuality int
	AVIFQuality int
	AVIFSpeed   int
}

// FormatFromPath infers the output format from the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".webp":
		return FormatWebP, nil
	case ".avif":
		return FormatAVIF, nil
	}
	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	switch f {
	case imaging.JPEG:
		return FormatJPEG, nil
	case imaging.PNG:
		return FormatPNG, nil
	case imaging.GIF:
		return FormatGIF, nil
	case imaging.TIFF:
		return FormatTIFF, nil
	case imaging.BMP:
		return FormatBMP, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Encode writes img to w in the named format.
func Encode(img image.Image, w io.Writer, format string, opts EncodeOptions) error {
	switch format {
	case FormatWebP:
		return EncodeWebP(img, w, orDefault(opts.WebPQuality, DefaultWebPQuality))
	case FormatAVIF:
		return EncodeAVIF(img, w, opts.AVIFQuality, opts.AVIFSpeed)
	case FormatJPEG:
		q := clampQuality(orDefault(opts.JPEGQuality, DefaultJPEGQuality))
		return encodeImaging(img, w, imaging.JPEG, format, imaging.JPEGQuality(q))
	case FormatPNG:
		return encodeImaging(img, w, imaging.PNG, format)
	case FormatGIF:
		return encodeImaging(img, w, imaging.GIF, format)
	case FormatTIFF:
		return encodeImaging(img, w, imaging.TIFF, format)
	case FormatBMP:
		return encodeImaging(img, w, imaging.BMP, format)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func encodeImaging(img image.Image, w io.Writer, f imaging.Format, name string, opts ...imaging.EncodeOption) error {
	if img == nil {
		return errors.New("nil image")
	}
	if w == nil {
		return errors.New("nil writer")
	}
	c := &countingWriter{w: w}
	if err := imaging.Encode(c, img, f, opts...); err != nil {
		return err
	}
	log.Printf("%s encoded size=%d", name, c.n)
	return nil
}

// EncodeWebP encodes img to WebP written to w with given quality (0-100).
// It logs the final encoded size. Returns an error from the encoder or writer.
func EncodeWebP(img image.Image, w io.Writer, quality int) error {
	if img == nil {
		return errors.New("nil image")
	}
	if w == nil {
		return errors.New("nil writer")
	}
	quality = clampQuality(quality)

	c := &countingWriter{w: w}
	opts := &webp.Options{Quality: float32(quality)}
	if err := webp.Encode(c, img, opts); err != nil {
		return err
	}

	log.Printf("webp encoded size=%d quality=%d", c.n, quality)
	return nil
}

// EncodeAVIF encodes img to AVIF written to w with given quality (0-100) and speed (0-10).
// It logs the final encoded size. Returns an error from the encoder or writer.
func EncodeAVIF(img image.Image, w io.Writer, quality, speed int) error {
	if img == nil {
		return errors.New("nil image")
	}
	if w == nil {
		return errors.New("nil writer")
	}
	if quality <= 0 {
		quality = DefaultAVIFQuality
	}
	if quality > 100 {
		quality = 100
	}
	if speed <= 0 {
		speed = DefaultAVIFSpeed
	}
	if speed > 10 {
		speed = 10
	}

	c := &countingWriter{w: w}
	if err := avif.Encode(c, img, avif.Options{Quality: quality, QualityAlpha: quality, Speed: speed}); err != nil {
		return err
	}

	log.Printf("avif encoded size=%d quality=%d speed=%d", c.n, quality, speed)
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func clampQuality(q int) int {
	if q < 0 {
		return 0
	}
	if q > 100 {
		return 100
	}
	return q
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	m, err := c.w.Write(p)
	c.n += int64(m)
	return m, err
}
