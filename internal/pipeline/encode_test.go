package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	webp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"golang.org/x/image/tiff"

	"imageresize/internal/testutil"
)

func smallTestImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	// put a red dot to avoid fully blank image optimizations
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	return img
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{
		"a/b/cat.png":    FormatPNG,
		"cat.JPG":        FormatJPEG,
		"cat.jpeg":       FormatJPEG,
		"cat.gif":        FormatGIF,
		"cat.tif":        FormatTIFF,
		"cat.tiff":       FormatTIFF,
		"cat.bmp":        FormatBMP,
		"cat.webp":       FormatWebP,
		"/x/cat.AVIF":    FormatAVIF,
		"archive.v2.png": FormatPNG,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		if err != nil {
			t.Fatalf("FormatFromPath(%q): unexpected error: %v", path, err)
		}
		if got != want {
			t.Fatalf("FormatFromPath(%q): expected %s, got %s", path, want, got)
		}
	}
}

func TestFormatFromPath_Unsupported(t *testing.T) {
	for _, path := range []string{"cat", "cat.txt", "cat.heic"} {
		if _, err := FormatFromPath(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("FormatFromPath(%q): expected ErrUnsupportedFormat, got %v", path, err)
		}
	}
}

func TestEncode_RoundTripsThroughDecoders(t *testing.T) {
	img := smallTestImage()
	decoders := map[string]func(*bytes.Reader) (image.Image, error){
		FormatJPEG: func(r *bytes.Reader) (image.Image, error) { return jpeg.Decode(r) },
		FormatPNG:  func(r *bytes.Reader) (image.Image, error) { return png.Decode(r) },
		FormatGIF:  func(r *bytes.Reader) (image.Image, error) { return gif.Decode(r) },
		FormatTIFF: func(r *bytes.Reader) (image.Image, error) { return tiff.Decode(r) },
		FormatWebP: func(r *bytes.Reader) (image.Image, error) { return webp.Decode(r) },
	}
	for format, decode := range decoders {
		var buf bytes.Buffer
		if err := Encode(img, &buf, format, EncodeOptions{}); err != nil {
			t.Fatalf("Encode %s failed: %v", format, err)
		}
		out, err := decode(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("decode %s failed: %v", format, err)
		}
		if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 48 {
			t.Fatalf("%s: expected 64x48, got %v", format, out.Bounds())
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(smallTestImage(), &buf, "heic", EncodeOptions{}); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestEncode_JPEGQualityAffectsSize(t *testing.T) {
	img := testutil.GradientImage(128, 96)
	var low, high bytes.Buffer
	if err := Encode(img, &low, FormatJPEG, EncodeOptions{JPEGQuality: 10}); err != nil {
		t.Fatalf("encode low quality failed: %v", err)
	}
	if err := Encode(img, &high, FormatJPEG, EncodeOptions{JPEGQuality: 100}); err != nil {
		t.Fatalf("encode high quality failed: %v", err)
	}
	if low.Len() >= high.Len() {
		t.Fatalf("expected low quality size < high quality size, got %d >= %d", low.Len(), high.Len())
	}
}

func TestEncodeWebP_ValidImage(t *testing.T) {
	img := smallTestImage()
	var buf bytes.Buffer
	if err := EncodeWebP(img, &buf, DefaultWebPQuality); err != nil {
		t.Fatalf("EncodeWebP failed: %v", err)
	}
	if _, err := webp.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("decoded webp failed: %v", err)
	}
}

type badWriter struct{}

func (badWriter) Write(p []byte) (int, error) { return 0, fmt.Errorf("closed writer") }

func TestEncode_ClosedWriter(t *testing.T) {
	img := smallTestImage()
	var bw badWriter
	if err := EncodeWebP(img, bw, DefaultWebPQuality); err == nil {
		t.Fatalf("expected error when writing webp to closed writer")
	}
	if err := Encode(img, bw, FormatPNG, EncodeOptions{}); err == nil {
		t.Fatalf("expected error when writing png to closed writer")
	}
}

func TestEncode_NilImage(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(nil, &buf, FormatPNG, EncodeOptions{}); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestEncodeAVIF_ValidImage(t *testing.T) {
	img := smallTestImage()
	var buf bytes.Buffer
	if err := EncodeAVIF(img, &buf, DefaultAVIFQuality, DefaultAVIFSpeed); err != nil {
		t.Fatalf("EncodeAVIF failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("encoded output empty")
	}
	if _, err := avif.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("decoded avif failed: %v", err)
	}
}
