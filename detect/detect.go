// Package detect dispatches one analysis mode over an input image. Only the
// metadata engine is implemented; pixel-domain detectors answer with an
// explicit NotImplemented outcome.
package detect

import (
	"fmt"

	"go.uber.org/zap"

	"greg-hacke/jpeg-forensics/meta"
	"greg-hacke/jpeg-forensics/report"
)

// Params carries the tuning values of the pixel-domain detectors
type Params struct {
	Quality   int `json:"quality" yaml:"quality"`
	BlockSize int `json:"block_size" yaml:"block_size"`
}

// Outcome is the result of one dispatch: Completed or NotImplemented
type Outcome interface {
	outcome()
}

// Completed carries the report of a mode that ran
type Completed struct {
	Report *report.Report
}

// NotImplemented marks a reserved mode with no detector behind it
type NotImplemented struct {
	Mode   Mode
	Params Params
}

func (Completed) outcome()      {}
func (NotImplemented) outcome() {}

// Message is the user-facing notice for the reserved mode
func (n NotImplemented) Message() string {
	return n.Mode.String() + ": not implemented"
}

// Dispatcher runs analysis modes
type Dispatcher struct {
	extractor *meta.Extractor
	logger    *zap.Logger
}

// NewDispatcher creates a dispatcher; a nil logger discards diagnostics
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		extractor: meta.NewExtractor(logger.Named("extract")),
		logger:    logger,
	}
}

// Run executes mode against the file at path. The path is expected to be
// validated already; errors from the metadata engine are returned wrapped.
func (d *Dispatcher) Run(mode Mode, path string, params Params) (Outcome, error) {
	log := d.logger.With(zap.Stringer("mode", mode), zap.String("file", path))

	if !mode.Implemented() {
		fields := []zap.Field{}
		if mode.UsesQuality() {
			fields = append(fields, zap.Int("quality", params.Quality))
		}
		if mode.UsesBlockSize() {
			fields = append(fields, zap.Int("block_size", params.BlockSize))
		}
		log.Info("reserved mode selected", fields...)
		return NotImplemented{Mode: mode, Params: params}, nil
	}

	block, err := d.extractor.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	rep := report.Assemble(path, block)
	log.Debug("report assembled",
		zap.Bool("stripped", rep.Stripped),
		zap.Int("findings", len(rep.Findings())),
		zap.Int("edit_indicators", rep.EditIndicators()))

	return Completed{Report: rep}, nil
}
