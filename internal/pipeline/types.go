package pipeline

import "errors"

var (
	ErrDecode            = errors.New("cannot read input image")
	ErrWrite             = errors.New("cannot write output image")
	ErrNotAnImage        = errors.New("file is not a supported image")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrTooLarge          = errors.New("image exceeds size limit")
	ErrInvalidDimensions = errors.New("image dimensions out of range")
)

// Default limits applied when Options leaves them unset. DefaultMaxDimension
// bounds both the decoded input and the resize target.
const (
	DefaultMaxInputBytes = 256 << 20
	DefaultMaxDimension  = 20000
)

// AspectRatioWarning is reported when the output does not keep the source's
// rounded aspect ratio.
const AspectRatioWarning = "Warning! Current transformation will not preserve original aspect ratio!"
