package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// JPEG markers
const (
	markerSOI  = 0xD8
	markerEOI  = 0xD9
	markerSOS  = 0xDA
	markerAPP0 = 0xE0
	markerAPP1 = 0xE1
	markerAPPF = 0xEF
	markerCOM  = 0xFE
	markerTEM  = 0x01
)

var (
	exifHeader = []byte("Exif\x00\x00")
	xmpHeader  = []byte("http://ns.adobe.com/xap/1.0/\x00")

	// ErrTruncated is returned when the stream ends inside the segment headers
	ErrTruncated = errors.New("truncated JPEG stream")
	// ErrCorrupt is returned when the segment structure cannot be followed
	ErrCorrupt = errors.New("corrupt JPEG segment structure")
)

// Segment is one marker segment found before the compressed image data
type Segment struct {
	Marker  byte
	Offset  int64  // position of the 0xFF marker prefix
	Length  int    // payload length, excluding the length field
	Payload []byte // loaded for APPn and COM segments only
}

// Name returns the conventional marker name
func (s Segment) Name() string {
	switch {
	case s.Marker >= markerAPP0 && s.Marker <= markerAPPF:
		return fmt.Sprintf("APP%d", s.Marker-markerAPP0)
	case s.Marker == markerCOM:
		return "COM"
	case s.Marker == markerSOS:
		return "SOS"
	case s.Marker == 0xDB:
		return "DQT"
	case s.Marker == 0xC4:
		return "DHT"
	case s.Marker == 0xDD:
		return "DRI"
	case s.Marker >= 0xC0 && s.Marker <= 0xCF:
		return fmt.Sprintf("SOF%d", s.Marker-0xC0)
	default:
		return fmt.Sprintf("0x%02X", s.Marker)
	}
}

// IsEXIF reports whether the segment is an APP1 EXIF block
func (s Segment) IsEXIF() bool {
	return s.Marker == markerAPP1 && bytes.HasPrefix(s.Payload, exifHeader)
}

// IsXMP reports whether the segment is an APP1 XMP packet
func (s Segment) IsXMP() bool {
	return s.Marker == markerAPP1 && bytes.HasPrefix(s.Payload, xmpHeader)
}

// TIFF returns the TIFF structure carried by an EXIF segment
func (s Segment) TIFF() []byte {
	if !s.IsEXIF() {
		return nil
	}
	return s.Payload[len(exifHeader):]
}

// ScanSegments walks the marker segments of a JPEG stream up to the start
// of scan. On ErrTruncated or ErrCorrupt the segments read so far are
// returned alongside the error.
func ScanSegments(r io.ReadSeeker) ([]Segment, error) {
	if err := RequireJPEG(r); err != nil {
		return nil, err
	}

	// Skip SOI marker
	pos, err := r.Seek(2, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("seek past SOI: %w", err)
	}

	var segments []Segment
	var buf [2]byte
	for {
		if _, err := io.ReadFull(r, buf[:1]); err != nil {
			return segments, fmt.Errorf("%w: reading marker at offset %d", ErrTruncated, pos)
		}
		if buf[0] != 0xFF {
			return segments, fmt.Errorf("%w: expected marker at offset %d, got 0x%02X", ErrCorrupt, pos, buf[0])
		}
		markerPos := pos
		pos++

		// Skip fill bytes
		var marker byte
		for {
			if _, err := io.ReadFull(r, buf[:1]); err != nil {
				return segments, fmt.Errorf("%w: reading marker at offset %d", ErrTruncated, pos)
			}
			pos++
			if buf[0] != 0xFF {
				marker = buf[0]
				break
			}
		}

		if marker == markerEOI {
			return segments, nil
		}
		// Standalone markers carry no length
		if marker == markerTEM || marker == markerSOI || (marker >= 0xD0 && marker <= 0xD7) {
			continue
		}

		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return segments, fmt.Errorf("%w: reading length at offset %d", ErrTruncated, pos)
		}
		pos += 2
		length := int(binary.BigEndian.Uint16(buf[:2]))
		if length < 2 {
			return segments, fmt.Errorf("%w: segment length %d at offset %d", ErrCorrupt, length, markerPos)
		}

		seg := Segment{Marker: marker, Offset: markerPos, Length: length - 2}
		if (marker >= markerAPP0 && marker <= markerAPPF) || marker == markerCOM {
			seg.Payload = make([]byte, seg.Length)
			if _, err := io.ReadFull(r, seg.Payload); err != nil {
				return segments, fmt.Errorf("%w: %s payload at offset %d", ErrTruncated, seg.Name(), markerPos)
			}
		} else if marker != markerSOS {
			if _, err := r.Seek(int64(seg.Length), io.SeekCurrent); err != nil {
				return segments, fmt.Errorf("%w: skipping %s: %v", ErrTruncated, seg.Name(), err)
			}
		}
		pos += int64(seg.Length)
		segments = append(segments, seg)

		// Check for image data start
		if marker == markerSOS {
			return segments, nil
		}
	}
}

// FirstEXIF returns the TIFF data of the first APP1 EXIF segment, nil when
// there is none.
func FirstEXIF(segments []Segment) []byte {
	for _, seg := range segments {
		if seg.IsEXIF() {
			return seg.TIFF()
		}
	}
	return nil
}
