package detect

import "fmt"

// Mode selects the analysis run on an image
type Mode int

const (
	ModeEXIF Mode = iota
	ModeJPEGGhostMultiple
	ModeJPEGGhost
	ModeNoise
	ModeMedianNoise
	ModeELA
	ModeCFA
)

// Modes lists every mode in flag order
var Modes = []Mode{ModeEXIF, ModeJPEGGhostMultiple, ModeJPEGGhost, ModeNoise, ModeMedianNoise, ModeELA, ModeCFA}

type modeInfo struct {
	flag      string
	shorthand string
	usage     string
	quality   bool
	blockSize bool
}

var modeTable = map[Mode]modeInfo{
	ModeEXIF:              {flag: "exif", shorthand: "e", usage: "expose digital forgeries by EXIF metadata (default)"},
	ModeJPEGGhostMultiple: {flag: "jpegghostm", usage: "expose digital forgeries by JPEG Ghost (multiple)"},
	ModeJPEGGhost:         {flag: "jpegghost", shorthand: "g", usage: "expose digital forgeries by JPEG Ghost", quality: true},
	ModeNoise:             {flag: "noise1", usage: "expose digital forgeries by noise inconsistencies", blockSize: true},
	ModeMedianNoise:       {flag: "noise2", usage: "expose digital forgeries by median-filter noise residue inconsistencies", blockSize: true},
	ModeELA:               {flag: "ela", usage: "expose digital forgeries by Error Level Analysis", quality: true, blockSize: true},
	ModeCFA:               {flag: "cfa", usage: "image tamper detection based on demosaicing artifacts"},
}

// String returns the flag name of the mode
func (m Mode) String() string {
	if info, ok := modeTable[m]; ok {
		return info.flag
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Shorthand returns the one-letter flag alias, if any
func (m Mode) Shorthand() string {
	return modeTable[m].shorthand
}

// Usage returns the flag help text
func (m Mode) Usage() string {
	return modeTable[m].usage
}

// UsesQuality reports whether the mode consumes the resave quality
func (m Mode) UsesQuality() bool {
	return modeTable[m].quality
}

// UsesBlockSize reports whether the mode consumes the kernel block size
func (m Mode) UsesBlockSize() bool {
	return modeTable[m].blockSize
}

// Implemented reports whether the mode produces a report
func (m Mode) Implemented() bool {
	return m == ModeEXIF
}

// ParseMode looks a mode up by flag name
func ParseMode(name string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode: %s", name)
}
