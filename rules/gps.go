package rules

import (
	"fmt"
	"strings"

	"greg-hacke/jpeg-forensics/meta"
)

// coordinate renders a GPS degrees/minutes/seconds triple with its
// reference and, when convertible, the signed decimal degrees.
func coordinate(tag meta.Tag, ref meta.Optional[meta.Tag]) string {
	out := tag.String()

	hemisphere := ""
	if r, ok := ref.Get(); ok {
		hemisphere = strings.ToUpper(r.String())
		if hemisphere != "" {
			out += " " + hemisphere
		}
	}

	if deg, ok := DecimalDegrees(tag); ok {
		if hemisphere == "S" || hemisphere == "W" {
			deg = -deg
		}
		out += fmt.Sprintf(" (%.6f)", deg)
	}
	return out
}

// DecimalDegrees converts a RATIONAL triple of degrees, minutes and seconds.
// Malformed values and zero denominators are not convertible.
func DecimalDegrees(tag meta.Tag) (float64, bool) {
	if tag.Malformed != "" {
		return 0, false
	}
	parts, ok := tag.Value.([]meta.Rational)
	if !ok || len(parts) != 3 {
		return 0, false
	}

	var deg float64
	for i, div := range []float64{1, 60, 3600} {
		v, ok := parts[i].Float()
		if !ok {
			return 0, false
		}
		deg += v / div
	}
	return deg, true
}
