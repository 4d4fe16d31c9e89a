package meta

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidInput is returned for paths that cannot be analyzed
var ErrInvalidInput = errors.New("invalid input file")

// jpegExtensions lists the accepted file extensions, lower case
var jpegExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
}

// CheckFile validates an input path before any analysis. The extension is
// checked first so that rejected paths are never touched.
func CheckFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !jpegExtensions[ext] {
		return fmt.Errorf("%w: %s: extension %q is not .jpg or .jpeg", ErrInvalidInput, path, ext)
	}

	// Check if file exists
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: file does not exist: %s", ErrInvalidInput, path)
		}
		return fmt.Errorf("%w: cannot access file: %v", ErrInvalidInput, err)
	}

	// Check if it's a regular file
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: not a regular file: %s", ErrInvalidInput, path)
	}

	return nil
}
