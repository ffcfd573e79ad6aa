package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"imageresize/internal/resize"
	"imageresize/internal/storage"
)

// Options controls decoding limits, orientation and encoder settings.
type Options struct {
	AutoOrient    bool
	MaxInputBytes int64
	MaxDimension  int
	Encode        EncodeOptions
}

// Result describes a completed resize.
type Result struct {
	OutputPath string
	Method     resize.Method
	Source     resize.Size
	Target     resize.Size
	Format     string
	Bytes      int64
	// Warning is set when the output does not keep the source aspect ratio.
	// It does not stop the write.
	Warning string
}

// Run resizes the image at req.InputPath and writes it to req.OutputPath, or
// to a path derived from the input name and target size when none is given.
// Option conflicts are reported before the input is opened.
func Run(ctx context.Context, req resize.Request, opts Options) (*Result, error) {
	strategy, err := resize.Plan(req)
	if err != nil {
		return nil, err
	}

	img, ct, data, err := DecodeFile(req.InputPath, opts.MaxInputBytes, opts.MaxDimension)
	if err != nil {
		return nil, err
	}
	if opts.AutoOrient {
		img = AutoOrient(img, data)
	}
	src := SizeOf(img)
	log.Printf("decoded path=%s type=%s size=%dx%d", req.InputPath, ct, src.Width, src.Height)

	target, err := resize.Target(strategy, src)
	if err != nil {
		return nil, err
	}
	maxDim := opts.MaxDimension
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}
	if target.Width > maxDim || target.Height > maxDim {
		return nil, fmt.Errorf("%w: %s gives %dx%d, limit is %d per side",
			resize.ErrInvalidSize, strategy.Method(), target.Width, target.Height, maxDim)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := Resample(img, target)
	res := &Result{
		Method: strategy.Method(),
		Source: src,
		Target: SizeOf(out),
	}
	log.Printf("resampled method=%s size=%dx%d", res.Method, res.Target.Width, res.Target.Height)

	if !resize.Preserved(src, res.Target) {
		res.Warning = AspectRatioWarning
	}

	res.OutputPath = req.OutputPath
	if res.OutputPath == "" {
		res.OutputPath = storage.OutputPath(req.InputPath, res.Target)
	}

	res.Format, err = FormatFromPath(res.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, res.OutputPath, err)
	}

	var buf bytes.Buffer
	if err := Encode(out, &buf, res.Format, opts.Encode); err != nil {
		return nil, fmt.Errorf("%w: encode %s: %w", ErrWrite, res.Format, err)
	}
	res.Bytes = int64(buf.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := storage.AtomicWrite(res.OutputPath, &buf); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, res.OutputPath, err)
	}
	log.Printf("wrote path=%s format=%s bytes=%d", res.OutputPath, res.Format, res.Bytes)

	return res, nil
}
