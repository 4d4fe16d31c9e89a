package meta

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"greg-hacke/jpeg-forensics/formats"
)

// Extractor reads the embedded capture metadata of JPEG images
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor; a nil logger discards diagnostics
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ReadFile opens filename, decodes its metadata and closes it again
func (e *Extractor) ReadFile(filename string) (*Block, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	e.logger.Debug("reading metadata", zap.String("file", filename))
	return e.ReadFrom(file)
}

// ReadFrom decodes the metadata of a JPEG stream. A stream without an EXIF
// segment, or with an unusable one, yields a stripped block rather than an
// error; only non-JPEG input and I/O failures are errors.
func (e *Extractor) ReadFrom(r io.ReadSeeker) (*Block, error) {
	segments, err := formats.ScanSegments(r)
	switch {
	case err == nil:
	case errors.Is(err, formats.ErrTruncated), errors.Is(err, formats.ErrCorrupt):
		e.logger.Warn("segment scan stopped early", zap.Error(err), zap.Int("segments", len(segments)))
	default:
		return nil, fmt.Errorf("failed to scan segments: %w", err)
	}

	for _, seg := range segments {
		e.logger.Debug("segment",
			zap.String("marker", seg.Name()),
			zap.Int64("offset", seg.Offset),
			zap.Int("length", seg.Length),
			zap.Bool("exif", seg.IsEXIF()),
			zap.Bool("xmp", seg.IsXMP()))
	}

	tiff := formats.FirstEXIF(segments)
	if tiff == nil {
		e.logger.Info("no EXIF segment found")
		return StrippedBlock(), nil
	}

	decoded, err := DecodeTIFF(tiff, e.logger)
	if err != nil {
		e.logger.Warn("EXIF segment unusable", zap.Error(err))
		return StrippedBlock(), nil
	}

	e.logger.Debug("decoded metadata", zap.Int("tags", len(decoded)))
	return NewBlock(decoded), nil
}
