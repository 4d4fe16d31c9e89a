package meta

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"greg-hacke/jpeg-forensics/tags"
)

// maxEntries bounds the entry count of one directory
const maxEntries = 1000

// ErrInvalidTIFF is returned when the EXIF payload has no usable TIFF header
var ErrInvalidTIFF = errors.New("invalid TIFF header")

// decoder walks the directories of one TIFF structure
type decoder struct {
	data    []byte
	order   binary.ByteOrder
	logger  *zap.Logger
	visited map[uint32]bool
	tags    []Tag
}

type childIFD struct {
	ifd    tags.IFD
	offset uint32
}

// DecodeTIFF decodes every directory reachable from the TIFF header.
// Damaged directories are skipped; only an unusable header is an error.
func DecodeTIFF(data []byte, logger *zap.Logger) ([]Tag, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidTIFF, len(data))
	}

	// Determine byte order
	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: byte order %q", ErrInvalidTIFF, data[:2])
	}

	// Check magic
	if magic := order.Uint16(data[2:4]); magic != 42 {
		return nil, fmt.Errorf("%w: magic %d", ErrInvalidTIFF, magic)
	}

	d := &decoder{
		data:    data,
		order:   order,
		logger:  logger,
		visited: make(map[uint32]bool),
	}
	logger.Debug("decoding TIFF structure",
		zap.String("byte_order", order.String()),
		zap.Int("size", len(data)))

	d.walk(tags.IFD0, order.Uint32(data[4:8]))
	d.extractThumbnail()

	return d.tags, nil
}

// walk decodes one directory, then the directories it points to. IFD0
// continues with IFD1 through its next-directory offset.
func (d *decoder) walk(ifd tags.IFD, offset uint32) {
	log := d.logger.With(zap.String("ifd", ifd.Group()), zap.Uint32("offset", offset))

	if d.visited[offset] {
		log.Warn("directory already visited, skipping loop")
		return
	}
	d.visited[offset] = true

	start := int(offset)
	if start+2 > len(d.data) {
		log.Warn("directory offset out of bounds")
		return
	}

	numEntries := int(d.order.Uint16(d.data[start : start+2]))
	if numEntries > maxEntries {
		log.Warn("implausible entry count", zap.Int("entries", numEntries))
		return
	}
	log.Debug("reading directory", zap.Int("entries", numEntries))

	var children []childIFD
	pos := start + 2
	complete := true
	for i := 0; i < numEntries; i++ {
		if pos+12 > len(d.data) {
			log.Warn("directory truncated", zap.Int("read", i), zap.Int("entries", numEntries))
			complete = false
			break
		}

		tagID := d.order.Uint16(d.data[pos : pos+2])
		dataType := tags.DataType(d.order.Uint16(d.data[pos+2 : pos+4]))
		count := d.order.Uint32(d.data[pos+4 : pos+8])
		var field [4]byte
		copy(field[:], d.data[pos+8:pos+12])

		tag := d.decodeEntry(tags.Code{IFD: ifd, ID: tagID}, dataType, count, field)
		if _, known := tags.GetTag(ifd, tagID); !known {
			log.Debug("unknown tag", zap.String("tag", fmt.Sprintf("0x%04X", tagID)), zap.Stringer("type", dataType))
		}
		if tag.Malformed != "" {
			log.Warn("malformed tag", zap.String("tag", tag.Label), zap.String("reason", tag.Malformed))
		}
		d.tags = append(d.tags, tag)

		// Pointer tags open nested directories
		if target, ok := tags.Pointers[tag.Code()]; ok {
			if off, ok := tag.Value.(int); ok && off > 0 {
				children = append(children, childIFD{ifd: target, offset: uint32(off)})
			}
		}

		pos += 12
	}

	for _, child := range children {
		d.walk(child.ifd, child.offset)
	}

	// Next IFD, only trusted after a full directory
	if ifd == tags.IFD0 && complete && pos+4 <= len(d.data) {
		if next := d.order.Uint32(d.data[pos : pos+4]); next != 0 {
			d.walk(tags.IFD1, next)
		}
	}
}

// decodeEntry reads the value of one entry. Values larger than four bytes
// live at an offset from the start of the TIFF structure.
func (d *decoder) decodeEntry(code tags.Code, dataType tags.DataType, count uint32, field [4]byte) Tag {
	tag := Tag{
		IFD:   code.IFD,
		ID:    code.ID,
		Label: tags.Label(code),
		Type:  dataType,
		Count: count,
	}

	size := dataType.Size()
	if size == 0 {
		// Unknown type, left undecoded
		return tag
	}

	totalSize := uint64(size) * uint64(count)
	var valueData []byte
	if totalSize <= 4 {
		valueData = field[:totalSize]
	} else {
		offset := uint64(d.order.Uint32(field[:]))
		if offset+totalSize > uint64(len(d.data)) {
			tag.Malformed = fmt.Sprintf("value at offset %d (%d bytes) exceeds %d-byte block", offset, totalSize, len(d.data))
			return tag
		}
		valueData = d.data[offset : offset+totalSize]
	}

	tag.Value = d.extractTagValue(dataType, count, valueData)
	return tag
}

// extractTagValue converts raw bytes according to the TIFF data type
func (d *decoder) extractTagValue(dataType tags.DataType, count uint32, valueData []byte) any {
	order := d.order
	n := int(count)

	switch dataType {
	case tags.TypeASCII:
		for i, c := range valueData {
			if c == 0 {
				return string(valueData[:i])
			}
		}
		return string(valueData)

	case tags.TypeByte:
		if n == 1 {
			return int(valueData[0])
		}
		return append([]byte(nil), valueData...)

	case tags.TypeUndefined:
		return append([]byte(nil), valueData...)

	case tags.TypeSByte:
		return intValues(n, func(i int) int { return int(int8(valueData[i])) })

	case tags.TypeShort:
		return intValues(n, func(i int) int { return int(order.Uint16(valueData[i*2:])) })

	case tags.TypeSShort:
		return intValues(n, func(i int) int { return int(int16(order.Uint16(valueData[i*2:]))) })

	case tags.TypeLong:
		return intValues(n, func(i int) int { return int(order.Uint32(valueData[i*4:])) })

	case tags.TypeSLong:
		return intValues(n, func(i int) int { return int(int32(order.Uint32(valueData[i*4:]))) })

	case tags.TypeRational:
		return rationalValues(n, func(i int) Rational {
			return Rational{
				Num: int64(order.Uint32(valueData[i*8:])),
				Den: int64(order.Uint32(valueData[i*8+4:])),
			}
		})

	case tags.TypeSRational:
		return rationalValues(n, func(i int) Rational {
			return Rational{
				Num: int64(int32(order.Uint32(valueData[i*8:]))),
				Den: int64(int32(order.Uint32(valueData[i*8+4:]))),
			}
		})

	case tags.TypeFloat:
		if n == 1 {
			return math.Float32frombits(order.Uint32(valueData))
		}
		vals := make([]float32, n)
		for i := range vals {
			vals[i] = math.Float32frombits(order.Uint32(valueData[i*4:]))
		}
		return vals

	case tags.TypeDouble:
		if n == 1 {
			return math.Float64frombits(order.Uint64(valueData))
		}
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = math.Float64frombits(order.Uint64(valueData[i*8:]))
		}
		return vals
	}

	return nil
}

func intValues(n int, at func(int) int) any {
	if n == 1 {
		return at(0)
	}
	vals := make([]int, n)
	for i := range vals {
		vals[i] = at(i)
	}
	return vals
}

func rationalValues(n int, at func(int) Rational) any {
	if n == 1 {
		return at(0)
	}
	vals := make([]Rational, n)
	for i := range vals {
		vals[i] = at(i)
	}
	return vals
}

// extractThumbnail adds the JPEG thumbnail referenced by IFD1 as a pseudo field
func (d *decoder) extractThumbnail() {
	var offset, length int
	var haveOffset, haveLength bool
	for _, t := range d.tags {
		switch t.Code() {
		case tags.JPEGInterchangeFormat:
			offset, haveOffset = t.Value.(int)
		case tags.JPEGInterchangeFormatLength:
			length, haveLength = t.Value.(int)
		}
	}
	if !haveOffset || !haveLength || length <= 0 {
		return
	}
	if offset < 0 || offset+length > len(d.data) {
		d.logger.Warn("thumbnail out of bounds", zap.Int("offset", offset), zap.Int("length", length))
		return
	}

	d.tags = append(d.tags, Tag{
		IFD:    tags.IFD1,
		Label:  ThumbnailLabel,
		Type:   tags.TypeUndefined,
		Count:  uint32(length),
		Value:  append([]byte(nil), d.data[offset:offset+length]...),
		pseudo: true,
	})
}
