package storage

import (
	"fmt"
	"path/filepath"

	"imageresize/internal/resize"
)

// OutputPath returns the default destination for a resized copy of original:
// the same directory, with "{width}x{height}__" prefixed to the file name.
func OutputPath(original string, size resize.Size) string {
	dir, name := filepath.Split(original)
	return filepath.Join(dir, fmt.Sprintf("%dx%d__%s", size.Width, size.Height, name))
}
