package cli

import (
	"errors"

	"greg-hacke/jpeg-forensics/formats"
	"greg-hacke/jpeg-forensics/meta"
)

// InvalidInputMessage is shown when the input cannot be analyzed
const InvalidInputMessage = "Invalid file. Please make sure the file exists and is of type JPEG"

// ErrInvalidInput marks paths rejected before analysis
var ErrInvalidInput = meta.ErrInvalidInput

// ErrNotImplemented marks reserved analysis modes
var ErrNotImplemented = errors.New("not implemented")

// ValidateInput checks the extension, then existence. Nothing is read from
// the file.
func ValidateInput(path string) error {
	return meta.CheckFile(path)
}

// isInvalidInput reports errors caused by the input file itself
func isInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, formats.ErrNotJPEG)
}
