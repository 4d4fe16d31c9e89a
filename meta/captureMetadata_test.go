package meta

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"greg-hacke/jpeg-forensics/formats"
	"greg-hacke/jpeg-forensics/internal/exiftest"
	"greg-hacke/jpeg-forensics/tags"
)

func canonJPEG() []byte {
	return exiftest.New().
		ASCII(tags.Make, "Canon").
		ASCII(tags.Model, "Canon EOS 80D").
		ASCII(tags.DateTimeOriginal, "2021:06:01 09:30:00").
		Short(tags.ISOSpeedRatings, 200).
		JPEG()
}

func TestReadFile(t *testing.T) {
	path := exiftest.WriteFile(t, "canon.jpg", canonJPEG())

	block, err := ReadMetadata(path)
	require.NoError(t, err)
	assert.False(t, block.Stripped())

	model, ok := block.ByName("Image Model").Get()
	require.True(t, ok)
	assert.Equal(t, "Canon EOS 80D", model.Value)

	original, ok := block.ByCode(tags.DateTimeOriginal).Get()
	require.True(t, ok)
	assert.Equal(t, "2021:06:01 09:30:00", original.Value)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadMetadata(filepath.Join(t.TempDir(), "missing.jpg"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFromStripped(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	block, err := NewExtractor(zap.New(core)).ReadFrom(bytes.NewReader(exiftest.PlainJPEG()))
	require.NoError(t, err)

	assert.True(t, block.Stripped())
	assert.False(t, block.Coded().Present())
	assert.Zero(t, block.Named().Len())
	assert.Equal(t, 1, logs.FilterMessage("no EXIF segment found").Len())
}

func TestReadFromUnusableEXIF(t *testing.T) {
	data := exiftest.Assemble(exiftest.EXIFSegment([]byte("garbage!")))

	core, logs := observer.New(zapcore.WarnLevel)
	block, err := NewExtractor(zap.New(core)).ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)

	assert.True(t, block.Stripped())
	assert.Equal(t, 1, logs.FilterMessage("EXIF segment unusable").Len())
}

func TestReadFromNotJPEG(t *testing.T) {
	_, err := ReadMetadataFrom(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")))
	assert.ErrorIs(t, err, formats.ErrNotJPEG)
}

func TestReadFromTruncatedKeepsMetadata(t *testing.T) {
	tiff := exiftest.New().ASCII(tags.Make, "Canon").TIFF()
	data := append([]byte{0xFF, 0xD8}, exiftest.EXIFSegment(tiff)...)
	// Stream ends inside the next segment header
	data = append(data, 0xFF, 0xDB, 0x00)

	core, logs := observer.New(zapcore.WarnLevel)
	block, err := NewExtractor(zap.New(core)).ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)

	assert.False(t, block.Stripped())
	assert.True(t, block.ByName("Image Make").Present())
	assert.Equal(t, 1, logs.FilterMessage("segment scan stopped early").Len())
}

func TestReadFromIsIdempotent(t *testing.T) {
	data := canonJPEG()

	first, err := ReadMetadataFrom(bytes.NewReader(data))
	require.NoError(t, err)
	second, err := ReadMetadataFrom(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, first.Named().Tags(), second.Named().Tags())
}
