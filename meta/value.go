package meta

import (
	"fmt"
	"strconv"
	"strings"

	"greg-hacke/jpeg-forensics/tags"
)

// ThumbnailLabel names the pseudo field holding the embedded JPEG thumbnail
const ThumbnailLabel = "JPEGThumbnail"

// Rational is a TIFF RATIONAL or SRATIONAL value
type Rational struct {
	Num int64
	Den int64
}

func (r Rational) String() string {
	if r.Den == 0 {
		return fmt.Sprintf("%d/0", r.Num)
	}
	if r.Num%r.Den == 0 {
		return strconv.FormatInt(r.Num/r.Den, 10)
	}
	g := gcd(abs(r.Num), abs(r.Den))
	num, den := r.Num/g, r.Den/g
	if den < 0 {
		num, den = -num, -den
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// Float converts the rational; false for a zero denominator
func (r Rational) Float() (float64, bool) {
	if r.Den == 0 {
		return 0, false
	}
	return float64(r.Num) / float64(r.Den), true
}

// Tag is one decoded directory entry
type Tag struct {
	IFD   tags.IFD
	ID    uint16
	Label string // descriptive name, e.g. "Image Make"
	Type  tags.DataType
	Count uint32

	// Value holds string, int, []int, Rational, []Rational, float32,
	// []float32, float64, []float64 or []byte. It is nil for types the
	// decoder does not know.
	Value any

	// Malformed describes why the value could not be read
	Malformed string

	pseudo bool
}

// Code returns the numeric key of the tag
func (t Tag) Code() tags.Code {
	return tags.Code{IFD: t.IFD, ID: t.ID}
}

// Pseudo reports whether the field was synthesized by the decoder rather
// than read from a directory entry.
func (t Tag) Pseudo() bool {
	return t.pseudo
}

// String renders the value for line-oriented output. It never fails:
// enumerations are mapped, arrays are bracketed, binary data is summarized.
func (t Tag) String() string {
	if t.Malformed != "" {
		return "<malformed: " + t.Malformed + ">"
	}
	if t.Value == nil {
		return fmt.Sprintf("[%sx%d]", t.Type, t.Count)
	}

	switch v := t.Value.(type) {
	case string:
		return escapeControl(strings.TrimRight(v, " \x00"))
	case int:
		if mapped, ok := tags.MapValue(t.Code(), v); ok {
			return mapped
		}
		return strconv.Itoa(v)
	case []int:
		return joinValues(len(v), func(i int) string { return strconv.Itoa(v[i]) })
	case Rational:
		return v.String()
	case []Rational:
		return joinValues(len(v), func(i int) string { return v[i].String() })
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case []float32:
		return joinValues(len(v), func(i int) string { return strconv.FormatFloat(float64(v[i]), 'g', -1, 32) })
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case []float64:
		return joinValues(len(v), func(i int) string { return strconv.FormatFloat(v[i], 'g', -1, 64) })
	case []byte:
		return formatBytes(v)
	default:
		return fmt.Sprint(v)
	}
}

func joinValues(n int, item func(int) string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = item(i)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatBytes prints text-like payloads as text, short binary as a list
// and anything longer as a size summary.
func formatBytes(b []byte) string {
	trimmed := strings.TrimRight(string(b), "\x00 ")
	if trimmed != "" && isPrintable(trimmed) {
		return trimmed
	}
	if len(b) <= 16 {
		return joinValues(len(b), func(i int) string { return strconv.Itoa(int(b[i])) })
	}
	return fmt.Sprintf("<%d bytes>", len(b))
}

// escapeControl escapes C0 control characters and DEL so that a value
// always stays on one output line and never reaches the terminal raw.
func escapeControl(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			quoted := strconv.QuoteRune(r)
			b.WriteString(quoted[1 : len(quoted)-1])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
