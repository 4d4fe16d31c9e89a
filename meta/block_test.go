package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/jpeg-forensics/tags"
)

func TestResolveRoundTrip(t *testing.T) {
	stored := []Tag{
		{IFD: tags.IFD0, ID: 0x010F, Label: "Image Make", Type: tags.TypeASCII, Count: 6, Value: "Canon"},
		{IFD: tags.ExifIFD, ID: 0x8827, Label: "EXIF ISOSpeedRatings", Type: tags.TypeShort, Count: 1, Value: 100},
		{IFD: tags.GPSIFD, ID: 0x0002, Label: "GPS GPSLatitude", Type: tags.TypeRational, Count: 3,
			Value: []Rational{{1, 1}, {2, 1}, {3, 1}}},
	}
	block := NewBlock(stored)

	for _, want := range stored {
		got, ok := block.Named().Resolve(want.Label).Get()
		require.True(t, ok, want.Label)
		assert.Equal(t, want, got)

		got, ok = block.ByCode(want.Code()).Get()
		require.True(t, ok, want.Code().String())
		assert.Equal(t, want, got)
	}
}

func TestResolveAbsent(t *testing.T) {
	block := NewBlock([]Tag{{IFD: tags.IFD0, ID: 0x010F, Label: "Image Make", Value: "Canon"}})

	for _, label := range []string{"", "Image Model", "image make", "\x00", "EXIF MakerNote"} {
		assert.False(t, block.ByName(label).Present(), label)
	}
	for _, code := range []tags.Code{{}, tags.Model, {IFD: tags.GPSIFD, ID: 0x010F}, {IFD: tags.IFD(-1), ID: 0xFFFF}} {
		assert.False(t, block.ByCode(code).Present(), code.String())
	}

	var empty NamedView
	assert.False(t, empty.Resolve("Image Make").Present(), "zero views resolve to absent")
	var emptyCoded CodedView
	assert.False(t, emptyCoded.Resolve(tags.Make).Present())
}

func TestKeySpacesAreNotCrossMapped(t *testing.T) {
	block := NewBlock([]Tag{
		{IFD: tags.GPSIFD, ID: 0x0002, Label: "GPS GPSLatitude", Value: "x"},
	})

	assert.True(t, block.ByCode(tags.GPSLatitude).Present())
	assert.False(t, block.ByCode(tags.Code{IFD: tags.InteropIFD, ID: 0x0002}).Present())
	assert.False(t, block.ByName("GPSLatitude").Present())
	assert.False(t, block.ByName(tags.GPSLatitude.String()).Present())
}

func TestNewBlockOrderAndDuplicates(t *testing.T) {
	block := NewBlock([]Tag{
		{IFD: tags.IFD0, ID: 0x0110, Label: "Image Model", Value: "first"},
		{IFD: tags.IFD0, ID: 0x010F, Label: "Image Make", Value: "Canon"},
		{IFD: tags.IFD0, ID: 0x0110, Label: "Image Model", Value: "second"},
		{IFD: tags.IFD1, Label: ThumbnailLabel, Value: []byte{1}, pseudo: true},
	})

	named := block.Named()
	assert.Equal(t, 3, named.Len())

	var labels []string
	for _, tag := range named.Tags() {
		labels = append(labels, tag.Label)
	}
	assert.Equal(t, []string{"Image Model", "Image Make", ThumbnailLabel}, labels)

	model, _ := block.ByName("Image Model").Get()
	assert.Equal(t, "first", model.Value)

	coded, ok := block.Coded().Get()
	require.True(t, ok)
	assert.Equal(t, 2, coded.Len(), "pseudo fields are not coded")
	assert.False(t, block.ByCode(tags.Code{IFD: tags.IFD1}).Present())
}

func TestStrippedBlock(t *testing.T) {
	block := StrippedBlock()

	assert.True(t, block.Stripped())
	assert.False(t, block.Coded().Present())
	assert.Zero(t, block.Named().Len())
	assert.False(t, block.ByCode(tags.Software).Present())
	assert.False(t, block.ByName("Image Software").Present())
}

func TestBlockWithNoTagsIsNotStripped(t *testing.T) {
	block := NewBlock(nil)

	assert.False(t, block.Stripped())
	coded, ok := block.Coded().Get()
	require.True(t, ok, "an empty EXIF segment is not an absent one")
	assert.Zero(t, coded.Len())
}

func TestOptional(t *testing.T) {
	some := Some("value")
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, "value", v)
	assert.Equal(t, "value", some.OrElse("default"))

	none := None[string]()
	v, ok = none.Get()
	assert.False(t, ok)
	assert.Empty(t, v)
	assert.Equal(t, "default", none.OrElse("default"))

	assert.True(t, Some("").Present(), "an empty value is still present")
}
