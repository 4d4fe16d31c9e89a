package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects how a report is written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses a format name case-insensitively. "yml" is accepted
// as "yaml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s", s)
	}
}

// Encode writes the report in a structured format. Text output goes
// through Render.
func Encode(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return nil

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("format %q is not a structured format", format)
	}
}

// Write renders or encodes the report according to format. NoDump applies
// to every format; NoColor only to text.
func Write(w io.Writer, r *Report, format Format, opts RenderOptions) error {
	if format == FormatText {
		return Render(w, r, opts)
	}
	if opts.NoDump {
		trimmed := *r
		trimmed.Dump = nil
		r = &trimmed
	}
	return Encode(w, r, format)
}
