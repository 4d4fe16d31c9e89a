package formats

import (
	"errors"
	"fmt"
	"io"
)

// Format is a file format identified from its magic number
type Format string

const (
	FormatUnknown Format = "UNKNOWN"
	FormatJPEG    Format = "JPEG"
	FormatPNG     Format = "PNG"
	FormatGIF     Format = "GIF"
	FormatTIFF    Format = "TIFF"
	FormatWebP    Format = "WEBP"
)

// ErrNotJPEG is returned when a stream does not start with a JPEG SOI marker
var ErrNotJPEG = errors.New("not a JPEG stream")

// Sniff determines the format of the data
func Sniff(r io.ReadSeeker) (Format, error) {
	// Read first 16 bytes for magic number detection
	header := make([]byte, 16)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatUnknown, fmt.Errorf("read header: %w", err)
	}
	header = header[:n]

	// Reset position
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown, fmt.Errorf("seek to start: %w", err)
	}

	switch {
	case len(header) >= 3 && header[0] == 0xFF && header[1] == 0xD8 && header[2] == 0xFF:
		return FormatJPEG, nil

	case len(header) >= 8 && string(header[:8]) == "\x89PNG\r\n\x1a\n":
		return FormatPNG, nil

	case len(header) >= 6 && (string(header[:6]) == "GIF87a" || string(header[:6]) == "GIF89a"):
		return FormatGIF, nil

	case len(header) >= 4 && (string(header[:4]) == "II*\x00" || string(header[:4]) == "MM\x00*"):
		return FormatTIFF, nil

	case len(header) >= 12 && string(header[:4]) == "RIFF" && string(header[8:12]) == "WEBP":
		return FormatWebP, nil

	default:
		return FormatUnknown, nil
	}
}

// RequireJPEG sniffs r and fails with ErrNotJPEG for any other format
func RequireJPEG(r io.ReadSeeker) error {
	format, err := Sniff(r)
	if err != nil {
		return err
	}
	if format != FormatJPEG {
		return fmt.Errorf("%w: detected %s", ErrNotJPEG, format)
	}
	return nil
}
