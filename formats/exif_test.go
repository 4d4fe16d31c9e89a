package formats

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/jpeg-forensics/internal/exiftest"
	"greg-hacke/jpeg-forensics/tags"
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"jpeg", exiftest.PlainJPEG(), FormatJPEG},
		{"png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), FormatPNG},
		{"gif", []byte("GIF89a\x01\x00\x01\x00"), FormatGIF},
		{"tiff", []byte("II*\x00\x08\x00\x00\x00"), FormatTIFF},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), FormatWebP},
		{"empty", nil, FormatUnknown},
		{"text", []byte("hello world"), FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bytes.NewReader(tt.data)
			got, err := Sniff(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			pos, _ := r.Seek(0, 1)
			assert.Zero(t, pos, "sniffing rewinds the reader")
		})
	}
}

func TestRequireJPEG(t *testing.T) {
	assert.NoError(t, RequireJPEG(bytes.NewReader(exiftest.PlainJPEG())))

	err := RequireJPEG(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")))
	assert.ErrorIs(t, err, ErrNotJPEG)
	assert.Contains(t, err.Error(), "PNG")
}

func TestScanSegments(t *testing.T) {
	tiff := exiftest.New().ASCII(tags.Make, "Canon").TIFF()
	data := exiftest.Assemble(
		exiftest.JFIFSegment(),
		exiftest.Segment(0xE1, []byte("http://ns.adobe.com/xap/1.0/\x00<x:xmpmeta/>")),
		exiftest.EXIFSegment(tiff),
		exiftest.Segment(0xFE, []byte("comment")),
	)

	segments, err := ScanSegments(bytes.NewReader(data))
	require.NoError(t, err)

	var names []string
	for _, s := range segments {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"APP0", "APP1", "APP1", "COM", "DQT", "SOS"}, names)

	assert.True(t, segments[1].IsXMP())
	assert.False(t, segments[1].IsEXIF())
	assert.True(t, segments[2].IsEXIF())
	assert.Equal(t, tiff, segments[2].TIFF())
	assert.Equal(t, []byte("comment"), segments[3].Payload)
	assert.Nil(t, segments[4].Payload, "non-APP payloads are skipped")
	assert.Equal(t, int64(2), segments[0].Offset)
}

func TestScanSegmentsRejectsNonJPEG(t *testing.T) {
	_, err := ScanSegments(bytes.NewReader([]byte("GIF89a....")))
	assert.ErrorIs(t, err, ErrNotJPEG)
}

func TestScanSegmentsFillBytesAndStandaloneMarkers(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xFF, 0xFF, 0xD0}
	data = append(data, exiftest.Segment(0xFE, []byte("x"))...)
	data = append(data, 0xFF, 0xD9)

	segments, err := ScanSegments(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "COM", segments[0].Name())
}

func TestScanSegmentsTruncated(t *testing.T) {
	full := exiftest.Assemble(exiftest.JFIFSegment(), exiftest.EXIFSegment(exiftest.New().TIFF()))
	// Cut inside the APP1 payload
	cut := full[:len(exiftest.JFIFSegment())+2+10]

	segments, err := ScanSegments(bytes.NewReader(cut))
	assert.ErrorIs(t, err, ErrTruncated)
	require.Len(t, segments, 1)
	assert.Equal(t, "APP0", segments[0].Name())
}

func TestScanSegmentsCorrupt(t *testing.T) {
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x01}
	_, err := ScanSegments(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrCorrupt)

	data = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x02, 0x42}
	_, err = ScanSegments(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestFirstEXIF(t *testing.T) {
	tiff := exiftest.NewBigEndian().ASCII(tags.Software, "GIMP 2.10").TIFF()

	segments, err := ScanSegments(bytes.NewReader(exiftest.WrapJPEG(tiff)))
	require.NoError(t, err)
	assert.Equal(t, tiff, FirstEXIF(segments))

	segments, err = ScanSegments(bytes.NewReader(exiftest.PlainJPEG()))
	require.NoError(t, err)
	assert.Nil(t, FirstEXIF(segments))
	assert.Nil(t, FirstEXIF(nil))
}

func TestFirstEXIFAfterTruncation(t *testing.T) {
	tiff := exiftest.New().ASCII(tags.Make, "Nikon").TIFF()
	data := append([]byte{0xFF, 0xD8}, exiftest.EXIFSegment(tiff)...)
	data = append(data, 0xFF) // stream ends mid-marker

	segments, err := ScanSegments(bytes.NewReader(data))
	assert.ErrorIs(t, err, ErrTruncated)
	assert.Equal(t, tiff, FirstEXIF(segments), "an EXIF block found before truncation wins")
}
