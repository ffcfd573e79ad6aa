// Package cli wires command-line flags to the resize pipeline.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"imageresize/internal/config"
	"imageresize/internal/pipeline"
	"imageresize/internal/resize"
)

const (
	ExitSuccess           = 0
	ExitFailure           = 1
	ExitInvalidInvocation = 2
)

// InvocationError reports a problem with the command line itself.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error returned by the command to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var invErr *InvocationError
	if errors.As(err, &invErr) && invErr != nil {
		if invErr.ExitCode != 0 {
			return invErr.ExitCode
		}
		return ExitInvalidInvocation
	}
	return ExitFailure
}

type flags struct {
	input      string
	output     string
	width      int
	height     int
	scale      float64
	quality    int
	autoOrient bool
	verbose    bool
}

// NewCommand builds the root command. Warnings go to stdout; log output goes
// to stderr when --verbose is set.
func NewCommand(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "imageresize -i INPUT (-s SCALE | -w WIDTH | -H HEIGHT | -w WIDTH -H HEIGHT) [-o OUTPUT]",
		Short:         "Resize images by width, height, both or scale",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				return invalidInvocationf("unexpected positional arguments: %q", args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				log.SetOutput(stderr)
			} else {
				log.SetOutput(io.Discard)
			}

			req, err := buildRequest(cmd.Flags(), f)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quality") && (f.quality < 1 || f.quality > 100) {
				return invalidInvocationf("--quality must be between 1 and 100 (got %d)", f.quality)
			}

			res, err := pipeline.Run(cmd.Context(), req, buildOptions(cmd.Flags(), f, cfg))
			if err != nil {
				if errors.Is(err, resize.ErrConflictingOptions) || errors.Is(err, resize.ErrMissingOptions) {
					return invalidInvocationf("%v", err)
				}
				return err
			}
			if res.Warning != "" {
				fmt.Fprintf(stdout, "\n%s\n\n", res.Warning)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidInvocationf("%v", err)
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.StringVarP(&f.input, "input_file", "i", "", "Path to the image to resize")
	fs.IntVarP(&f.width, "width", "w", 0, "Output image width")
	fs.IntVarP(&f.height, "height", "H", 0, "Output image height")
	fs.Float64VarP(&f.scale, "scale", "s", 0, "Output image scale normed to 1")
	fs.StringVarP(&f.output, "output_file", "o", "", "Output image destination")
	fs.IntVarP(&f.quality, "quality", "q", 0, "Quality for lossy output formats (1-100)")
	fs.BoolVar(&f.autoOrient, "auto-orient", false, "Apply EXIF orientation before resizing")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log pipeline steps to stderr")

	return cmd
}

// buildRequest turns the parsed flags into a resize.Request. A sizing flag is
// set when it appears on the command line, whatever its value.
func buildRequest(fs *pflag.FlagSet, f flags) (resize.Request, error) {
	if f.input == "" {
		return resize.Request{}, invalidInvocationf("--input_file is required")
	}

	req := resize.Request{InputPath: f.input, OutputPath: f.output}
	if fs.Changed("scale") {
		if f.scale <= 0 {
			return resize.Request{}, invalidInvocationf("--scale must be positive (got %v)", f.scale)
		}
		scale := f.scale
		req.Scale = &scale
	}
	if fs.Changed("width") {
		if f.width <= 0 {
			return resize.Request{}, invalidInvocationf("--width must be positive (got %d)", f.width)
		}
		width := f.width
		req.Width = &width
	}
	if fs.Changed("height") {
		if f.height <= 0 {
			return resize.Request{}, invalidInvocationf("--height must be positive (got %d)", f.height)
		}
		height := f.height
		req.Height = &height
	}
	return req, nil
}

func buildOptions(fs *pflag.FlagSet, f flags, cfg *config.Config) pipeline.Options {
	opts := pipeline.Options{
		AutoOrient:    f.autoOrient,
		MaxInputBytes: cfg.MaxInputBytes,
		MaxDimension:  cfg.MaxDimension,
		Encode: pipeline.EncodeOptions{
			JPEGQuality: cfg.JPEGQuality,
			WebPQuality: cfg.WebPQuality,
			AVIFQuality: cfg.AVIFQuality,
			AVIFSpeed:   cfg.AVIFSpeed,
		},
	}
	if fs.Changed("quality") {
		opts.Encode.JPEGQuality = f.quality
		opts.Encode.WebPQuality = f.quality
		opts.Encode.AVIFQuality = f.quality
	}
	return opts
}

// Execute runs the command with args and returns the process exit status.
// Errors are printed to stderr.
func Execute(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	cmd := NewCommand(cfg, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
	}
	return ExitCode(err)
}
