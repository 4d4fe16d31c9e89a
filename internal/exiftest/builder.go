// Package exiftest builds synthetic TIFF/EXIF blocks and JPEG streams for tests.
package exiftest

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"greg-hacke/jpeg-forensics/tags"
)

type entry struct {
	id    uint16
	typ   tags.DataType
	count uint32
	data  []byte
	raw   *[4]byte // value field written verbatim

	pointsTo  *tags.IFD
	thumbnail bool
}

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Builder lays out IFD0, the Exif, GPS and Interop directories and IFD1.
// Entries keep insertion order; pointer entries are appended after them.
type Builder struct {
	order     byteOrder
	ifds      map[tags.IFD][]entry
	thumbnail []byte
}

// New returns a little-endian ("II") builder
func New() *Builder {
	return &Builder{order: binary.LittleEndian, ifds: make(map[tags.IFD][]entry)}
}

// NewBigEndian returns a big-endian ("MM") builder
func NewBigEndian() *Builder {
	return &Builder{order: binary.BigEndian, ifds: make(map[tags.IFD][]entry)}
}

func (b *Builder) add(code tags.Code, e entry) *Builder {
	e.id = code.ID
	b.ifds[code.IFD] = append(b.ifds[code.IFD], e)
	return b
}

// ASCII adds a NUL-terminated string
func (b *Builder) ASCII(code tags.Code, s string) *Builder {
	data := append([]byte(s), 0)
	return b.add(code, entry{typ: tags.TypeASCII, count: uint32(len(data)), data: data})
}

// Short adds one or more SHORT values
func (b *Builder) Short(code tags.Code, vals ...uint16) *Builder {
	data := make([]byte, 2*len(vals))
	for i, v := range vals {
		b.order.PutUint16(data[i*2:], v)
	}
	return b.add(code, entry{typ: tags.TypeShort, count: uint32(len(vals)), data: data})
}

// Long adds one or more LONG values
func (b *Builder) Long(code tags.Code, vals ...uint32) *Builder {
	data := make([]byte, 4*len(vals))
	for i, v := range vals {
		b.order.PutUint32(data[i*4:], v)
	}
	return b.add(code, entry{typ: tags.TypeLong, count: uint32(len(vals)), data: data})
}

// Rational adds RATIONAL values given as numerator, denominator pairs
func (b *Builder) Rational(code tags.Code, pairs ...uint32) *Builder {
	data := make([]byte, 4*len(pairs))
	for i, v := range pairs {
		b.order.PutUint32(data[i*4:], v)
	}
	return b.add(code, entry{typ: tags.TypeRational, count: uint32(len(pairs) / 2), data: data})
}

// SRational adds SRATIONAL values given as numerator, denominator pairs
func (b *Builder) SRational(code tags.Code, pairs ...int32) *Builder {
	data := make([]byte, 4*len(pairs))
	for i, v := range pairs {
		b.order.PutUint32(data[i*4:], uint32(v))
	}
	return b.add(code, entry{typ: tags.TypeSRational, count: uint32(len(pairs) / 2), data: data})
}

// Double adds DOUBLE values
func (b *Builder) Double(code tags.Code, vals ...float64) *Builder {
	data := make([]byte, 8*len(vals))
	for i, v := range vals {
		b.order.PutUint64(data[i*8:], math.Float64bits(v))
	}
	return b.add(code, entry{typ: tags.TypeDouble, count: uint32(len(vals)), data: data})
}

// Bytes adds BYTE or UNDEFINED data
func (b *Builder) Bytes(code tags.Code, typ tags.DataType, data []byte) *Builder {
	return b.add(code, entry{typ: typ, count: uint32(len(data)), data: append([]byte(nil), data...)})
}

// Raw adds an entry whose 4-byte value field is written verbatim, which
// allows out-of-range offsets and unknown types.
func (b *Builder) Raw(code tags.Code, typ tags.DataType, count uint32, field [4]byte) *Builder {
	return b.add(code, entry{typ: typ, count: count, raw: &field})
}

// Thumbnail embeds JPEG thumbnail bytes referenced from IFD1
func (b *Builder) Thumbnail(data []byte) *Builder {
	b.thumbnail = append([]byte(nil), data...)
	return b
}

// Order returns the byte order of the produced TIFF block
func (b *Builder) Order() binary.ByteOrder {
	return b.order
}

// TIFF produces the TIFF structure carried inside an EXIF APP1 segment
func (b *Builder) TIFF() []byte {
	layout := []tags.IFD{tags.IFD0, tags.ExifIFD, tags.GPSIFD, tags.InteropIFD, tags.IFD1}

	lists := make(map[tags.IFD][]entry)
	for _, ifd := range layout {
		lists[ifd] = append([]entry(nil), b.ifds[ifd]...)
	}

	pointer := func(target tags.IFD) entry {
		t := target
		return entry{typ: tags.TypeLong, count: 1, pointsTo: &t}
	}
	hasInterop := len(lists[tags.InteropIFD]) > 0
	if hasInterop {
		lists[tags.ExifIFD] = append(lists[tags.ExifIFD], withID(pointer(tags.InteropIFD), tags.InteropPointer.ID))
	}
	if len(lists[tags.ExifIFD]) > 0 {
		lists[tags.IFD0] = append(lists[tags.IFD0], withID(pointer(tags.ExifIFD), tags.ExifIFDPointer.ID))
	}
	if len(lists[tags.GPSIFD]) > 0 {
		lists[tags.IFD0] = append(lists[tags.IFD0], withID(pointer(tags.GPSIFD), tags.GPSInfoPointer.ID))
	}
	if b.thumbnail != nil {
		lists[tags.IFD1] = append(lists[tags.IFD1],
			entry{id: tags.JPEGInterchangeFormat.ID, typ: tags.TypeLong, count: 1, thumbnail: true},
			entry{id: tags.JPEGInterchangeFormatLength.ID, typ: tags.TypeLong, count: 1, data: b.long(uint32(len(b.thumbnail)))},
		)
	}

	// IFD0 is always written, even when empty
	offsets := make(map[tags.IFD]uint32)
	offset := uint32(8)
	for _, ifd := range layout {
		if ifd != tags.IFD0 && len(lists[ifd]) == 0 {
			continue
		}
		offsets[ifd] = offset
		offset += 2 + 12*uint32(len(lists[ifd])) + 4
	}
	dataStart := offset

	var dataArea []byte
	dataOffsets := make(map[*entry]uint32)
	for _, ifd := range layout {
		list := lists[ifd]
		for i := range list {
			e := &list[i]
			if e.raw == nil && len(e.data) > 4 {
				dataOffsets[e] = dataStart + uint32(len(dataArea))
				dataArea = append(dataArea, e.data...)
				if len(dataArea)%2 == 1 {
					dataArea = append(dataArea, 0)
				}
			}
		}
	}
	thumbOffset := dataStart + uint32(len(dataArea))
	dataArea = append(dataArea, b.thumbnail...)

	out := make([]byte, 0, int(dataStart)+len(dataArea))
	if b.order == binary.LittleEndian {
		out = append(out, 'I', 'I')
	} else {
		out = append(out, 'M', 'M')
	}
	out = b.order.AppendUint16(out, 42)
	out = b.order.AppendUint32(out, offsets[tags.IFD0])

	for _, ifd := range layout {
		if _, ok := offsets[ifd]; !ok {
			continue
		}
		list := lists[ifd]
		out = b.order.AppendUint16(out, uint16(len(list)))
		for i := range list {
			e := &list[i]
			out = b.order.AppendUint16(out, e.id)
			out = b.order.AppendUint16(out, uint16(e.typ))
			out = b.order.AppendUint32(out, e.count)

			var field [4]byte
			switch {
			case e.raw != nil:
				field = *e.raw
			case e.pointsTo != nil:
				b.order.PutUint32(field[:], offsets[*e.pointsTo])
			case e.thumbnail:
				b.order.PutUint32(field[:], thumbOffset)
			case len(e.data) > 4:
				b.order.PutUint32(field[:], dataOffsets[e])
			default:
				copy(field[:], e.data)
			}
			out = append(out, field[:]...)
		}

		next := uint32(0)
		if ifd == tags.IFD0 {
			if off, ok := offsets[tags.IFD1]; ok {
				next = off
			}
		}
		out = b.order.AppendUint32(out, next)
	}

	return append(out, dataArea...)
}

// JPEG wraps the TIFF block into a complete JPEG stream
func (b *Builder) JPEG() []byte {
	return WrapJPEG(b.TIFF())
}

func (b *Builder) long(v uint32) []byte {
	out := make([]byte, 4)
	b.order.PutUint32(out, v)
	return out
}

func withID(e entry, id uint16) entry {
	e.id = id
	return e
}

// Segment encodes one marker segment with its length field
func Segment(marker byte, payload []byte) []byte {
	length := len(payload) + 2
	out := []byte{0xFF, marker, byte(length >> 8), byte(length)}
	return append(out, payload...)
}

// EXIFSegment encodes an APP1 EXIF segment around a TIFF block
func EXIFSegment(tiff []byte) []byte {
	return Segment(0xE1, append([]byte("Exif\x00\x00"), tiff...))
}

// Assemble builds SOI, the given segments, a quantization table, a scan
// header, a few bytes of entropy-coded data and EOI.
func Assemble(segments ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	for _, seg := range segments {
		out = append(out, seg...)
	}
	out = append(out, Segment(0xDB, make([]byte, 65))...)
	out = append(out, Segment(0xDA, []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00})...)
	out = append(out, 0x12, 0x34, 0xFF, 0x00, 0x56)
	return append(out, 0xFF, 0xD9)
}

// WrapJPEG builds a JPEG with a JFIF APP0 segment followed by the EXIF block
func WrapJPEG(tiff []byte) []byte {
	return Assemble(JFIFSegment(), EXIFSegment(tiff))
}

// JFIFSegment encodes a minimal APP0 JFIF header
func JFIFSegment() []byte {
	return Segment(0xE0, []byte{'J', 'F', 'I', 'F', 0x00, 0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00})
}

// PlainJPEG builds a JPEG without any EXIF segment, as produced by
// platforms that strip metadata on upload.
func PlainJPEG() []byte {
	return Assemble(JFIFSegment(), Segment(0xFE, []byte("re-encoded")))
}

// WriteFile writes data into a fresh temporary directory and returns its path
func WriteFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
