package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{Make, "Image Make"},
		{Software, "Image Software"},
		{ISOSpeedRatings, "EXIF ISOSpeedRatings"},
		{Flash, "EXIF Flash"},
		{MakerNote, "EXIF MakerNote"},
		{GPSLatitude, "GPS GPSLatitude"},
		{Code{InteropIFD, 0x0002}, "Interoperability InteroperabilityVersion"},
		{JPEGInterchangeFormat, "Thumbnail JPEGInterchangeFormat"},
		{Code{IFD0, 0xBEEF}, "Image Tag 0xBEEF"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(tt.code), tt.code.String())
	}
}

func TestCodesAreNamespacedByIFD(t *testing.T) {
	assert.NotEqual(t, GPSLatitude, Code{InteropIFD, 0x0002})
	assert.NotEqual(t, Label(GPSLatitude), Label(Code{InteropIFD, 0x0002}))
}

func TestGetTag(t *testing.T) {
	def, ok := GetTag(IFD0, 0x0131)
	assert.True(t, ok)
	assert.Equal(t, "Software", def.Name)

	_, ok = GetTag(GPSIFD, 0xFFFF)
	assert.False(t, ok)

	_, ok = GetTag(IFD(42), 0x0131)
	assert.False(t, ok)
}

func TestMapValue(t *testing.T) {
	v, ok := MapValue(Flash, 0x19)
	assert.True(t, ok)
	assert.Equal(t, "Flash fired, auto mode", v)

	_, ok = MapValue(Flash, 0x7F)
	assert.False(t, ok)

	_, ok = MapValue(Make, 1)
	assert.False(t, ok, "tags without enums never map")
}

func TestRegisterTagTableReplaces(t *testing.T) {
	RegisterTagTable(IFD(99), []TagDef{{ID: 1, Name: "First"}})
	RegisterTagTable(IFD(99), []TagDef{{ID: 1, Name: "Second"}, {ID: 2, Name: "Other"}})

	def, ok := GetTag(IFD(99), 1)
	assert.True(t, ok)
	assert.Equal(t, "Second", def.Name)
	assert.Equal(t, "IFD99 Other", Label(Code{IFD(99), 2}))
}

func TestDataTypeSize(t *testing.T) {
	assert.Equal(t, uint32(1), TypeASCII.Size())
	assert.Equal(t, uint32(2), TypeShort.Size())
	assert.Equal(t, uint32(4), TypeLong.Size())
	assert.Equal(t, uint32(8), TypeRational.Size())
	assert.Equal(t, uint32(0), DataType(99).Size())
	assert.Equal(t, "TYPE99", DataType(99).String())
	assert.Equal(t, "SRATIONAL", TypeSRational.String())
}

func TestTables(t *testing.T) {
	tables := Tables()
	require.GreaterOrEqual(t, len(tables), 5)

	for i, ifd := range []IFD{IFD0, IFD1, ExifIFD, GPSIFD, InteropIFD} {
		assert.Equal(t, ifd, tables[i].IFD)
		assert.NotEmpty(t, tables[i].Tags, ifd.Group())
		for j := 1; j < len(tables[i].Tags); j++ {
			assert.Less(t, tables[i].Tags[j-1].ID, tables[i].Tags[j].ID)
		}
	}
}
