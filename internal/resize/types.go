// Package resize decides how an image should be resized and computes the
// target size. It performs no I/O.
package resize

import "errors"

var (
	ErrConflictingOptions = errors.New("either scale or width/height must be specified, not both")
	ErrMissingOptions     = errors.New("scale or width/height must be specified")
	ErrInvalidSize        = errors.New("target size must be positive")
)

// Method identifies one of the four size-computation strategies.
type Method int

const (
	Scale Method = iota + 1
	Linear
	AdjustedHeight
	AdjustedWidth
)

func (m Method) String() string {
	switch m {
	case Scale:
		return "SCALE"
	case Linear:
		return "LINEAR"
	case AdjustedHeight:
		return "ADJUSTED_HEIGHT"
	case AdjustedWidth:
		return "ADJUSTED_WIDTH"
	default:
		return "UNKNOWN"
	}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  int
	Height int
}

// Request is the validated user intent for a single resize. Nil sizing
// fields are unset.
type Request struct {
	InputPath  string
	OutputPath string
	Scale      *float64
	Width      *int
	Height     *int
}
