// Package report assembles rule results and the raw tag dump into the
// report printed for one image.
package report

import (
	"greg-hacke/jpeg-forensics/meta"
	"greg-hacke/jpeg-forensics/rules"
)

// StrippedNotice is the only content of a report on an image without EXIF
const StrippedNotice = "The EXIF data has been stripped. Photo may be taken from Facebook, Twitter, imgur"

// DeniedFields are left out of the raw dump: binary blobs and internal names
var DeniedFields = map[string]bool{
	meta.ThumbnailLabel: true,
	"TIFFThumbnail":     true,
	"Filename":          true,
	"EXIF MakerNote":    true,
}

// Field is one line of the raw tag dump
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Report is the outcome of the metadata engine for one file
type Report struct {
	File     string         `json:"file" yaml:"file"`
	Stripped bool           `json:"stripped" yaml:"stripped"`
	Notice   string         `json:"notice,omitempty" yaml:"notice,omitempty"`
	Results  []rules.Result `json:"results" yaml:"results"`
	Dump     []Field        `json:"dump" yaml:"dump"`
}

// Assemble runs the rule battery over block. A stripped block yields the
// notice alone; no rule runs against it.
func Assemble(file string, block *meta.Block) *Report {
	r := &Report{File: file}

	coded, ok := block.Coded().Get()
	if !ok {
		r.Stripped = true
		r.Notice = StrippedNotice
		return r
	}

	named := block.Named()
	r.Results = rules.Evaluate(named, coded)

	for _, tag := range named.Tags() {
		if DeniedFields[tag.Label] {
			continue
		}
		r.Dump = append(r.Dump, Field{Name: tag.Label, Value: tag.String()})
	}
	return r
}

// Findings flattens the results in rule order
func (r *Report) Findings() []rules.Finding {
	var out []rules.Finding
	for _, res := range r.Results {
		out = append(out, res.Findings...)
	}
	return out
}

// EditIndicators counts the detected rules whose category points at
// post-capture processing.
func (r *Report) EditIndicators() int {
	n := 0
	for _, res := range r.Results {
		if res.Detected && res.Category.EditIndicator() {
			n++
		}
	}
	return n
}
