package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greg-hacke/jpeg-forensics/internal/exiftest"
	"greg-hacke/jpeg-forensics/meta"
	"greg-hacke/jpeg-forensics/tags"
)

func views(t *testing.T, b *exiftest.Builder) (meta.NamedView, meta.CodedView) {
	t.Helper()
	decoded, err := meta.DecodeTIFF(b.TIFF(), nil)
	require.NoError(t, err)
	block := meta.NewBlock(decoded)
	coded, ok := block.Coded().Get()
	require.True(t, ok)
	return block.Named(), coded
}

func messages(r Result) []string {
	var out []string
	for _, f := range r.Findings {
		out = append(out, f.Message)
	}
	return out
}

func TestCheckSoftware(t *testing.T) {
	named, coded := views(t, exiftest.New().ASCII(tags.Software, "GIMP 2.10"))

	r := CheckSoftware(named, coded)
	assert.True(t, r.Detected)
	assert.Equal(t, []string{"Image edited with: GIMP 2.10"}, messages(r))
	assert.Equal(t, CategorySoftwareEdit, r.Findings[0].Category)
	assert.Equal(t, RuleSoftwareEdit, r.Findings[0].Rule)

	named, coded = views(t, exiftest.New().ASCII(tags.Make, "Canon"))
	r = CheckSoftware(named, coded)
	assert.False(t, r.Detected)
	assert.Empty(t, r.Findings)
}

func TestDatesAreReportedIndependently(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.DateTime, "2022:03:04 18:00:00").
		ASCII(tags.DateTimeOriginal, "2020:01:01 10:00:00"))

	modify := CheckModifyDate(named, coded)
	assert.True(t, modify.Detected)
	assert.Equal(t, []string{"Photo modified since creation. Modified: 2022:03:04 18:00:00"}, messages(modify))

	original := CheckOriginalDate(named, coded)
	assert.True(t, original.Detected)
	assert.Equal(t, []string{"The shutter actuation time: 2020:01:01 10:00:00"}, messages(original))
}

func TestCheckOriginalDate(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.DateTimeOriginal, "2020:01:01 10:00:00").
		ASCII(tags.DateTimeDigitized, "2020:01:01 10:00:01"))

	r := CheckOriginalDate(named, coded)
	assert.Equal(t, []string{
		"The shutter actuation time: 2020:01:01 10:00:00",
		"Image created at: 2020:01:01 10:00:01",
	}, messages(r))

	named, coded = views(t, exiftest.New().ASCII(tags.Make, "Canon"))
	r = CheckOriginalDate(named, coded)
	assert.False(t, r.Detected)
	assert.Empty(t, r.Findings, "no finding when both dates are absent")
}

func TestCheckCameraIdentity(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.Make, "Canon").
		ASCII(tags.Model, "EOS 80D"))

	r := CheckCameraIdentity(named, coded)
	assert.True(t, r.Detected)
	assert.Equal(t, []string{
		"Make: Canon",
		"Model: EOS 80D",
		"ISO Speed: not available",
		"Flash: not available",
	}, messages(r))

	named, coded = views(t, exiftest.New().
		Short(tags.ISOSpeedRatings, 800).
		Short(tags.Flash, 0x10))
	r = CheckCameraIdentity(named, coded)
	assert.False(t, r.Detected)
	assert.Equal(t, []string{
		"Make: not available",
		"Model: not available",
		"ISO Speed: 800",
		"Flash: Flash did not fire, compulsory flash mode",
	}, messages(r))
}

func TestCheckGPSLocation(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.GPSLatitudeRef, "N").
		Rational(tags.GPSLatitude, 51, 1, 30, 1, 2643, 100).
		ASCII(tags.GPSLongitudeRef, "W").
		Rational(tags.GPSLongitude, 0, 1, 7, 1, 3960, 100))

	r := CheckGPSLocation(named, coded)
	assert.True(t, r.Detected)
	assert.Equal(t, []string{
		"Latitude: [51, 30, 2643/100] N (51.507342)",
		"Longitude: [0, 7, 198/5] W (-0.127667)",
	}, messages(r))
}

func TestCheckGPSLocationWithoutReference(t *testing.T) {
	named, coded := views(t, exiftest.New().Rational(tags.GPSLongitude, 10, 1, 0, 1, 0, 0))

	r := CheckGPSLocation(named, coded)
	assert.True(t, r.Detected)
	assert.Equal(t, []string{"Longitude: [10, 0, 0/0]"}, messages(r), "zero denominators are not converted")
}

func TestCheckGPSLocationKeysAreNotInterop(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.Code{IFD: tags.InteropIFD, ID: 0x0002}, "0100"))

	r := CheckGPSLocation(named, coded)
	assert.False(t, r.Detected)
}

func TestCheckAuthorCopyright(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.Artist, "Jane Doe").
		ASCII(tags.Copyright, "(c) 2021 Jane Doe"))

	r := CheckAuthorCopyright(named, coded)
	assert.True(t, r.Detected)
	assert.Equal(t, []string{"Author: Jane Doe", "Copyright: (c) 2021 Jane Doe"}, messages(r))
}

func TestMalformedFieldsRenderBestEffort(t *testing.T) {
	named, coded := views(t, exiftest.New().
		Raw(tags.Software, tags.TypeASCII, 200, [4]byte{0xF0, 0xF0, 0, 0}).
		ASCII(tags.Artist, "Jane Doe"))

	software := CheckSoftware(named, coded)
	require.True(t, software.Detected)
	assert.Contains(t, software.Findings[0].Message, "Image edited with: <malformed:")

	author := CheckAuthorCopyright(named, coded)
	assert.Equal(t, []string{"Author: Jane Doe"}, messages(author))
}

func TestEvaluateOrder(t *testing.T) {
	named, coded := views(t, exiftest.New().
		ASCII(tags.Make, "Canon").
		ASCII(tags.Model, "EOS 80D").
		ASCII(tags.Software, "Adobe Photoshop"))

	results := Evaluate(named, coded)
	require.Len(t, results, len(Default))
	for i, rule := range Default {
		assert.Equal(t, rule.Name, results[i].Rule)
		assert.Equal(t, rule.Category, results[i].Category)
	}

	assert.Equal(t, []string{"Image edited with: Adobe Photoshop"}, messages(results[0]))
	assert.Contains(t, messages(results[3]), "Make: Canon")
	assert.Contains(t, messages(results[3]), "Model: EOS 80D")
}

func TestEvaluateOnEmptyViews(t *testing.T) {
	results := Evaluate(meta.NamedView{}, meta.CodedView{})
	for _, r := range results {
		if r.Rule == RuleCameraIdentity {
			assert.Len(t, r.Findings, 4)
			continue
		}
		assert.False(t, r.Detected, r.Rule)
		assert.Empty(t, r.Findings, r.Rule)
	}
}

func TestDecimalDegrees(t *testing.T) {
	deg, ok := DecimalDegrees(meta.Tag{Value: []meta.Rational{{Num: 40, Den: 1}, {Num: 26, Den: 1}, {Num: 46, Den: 1}}})
	require.True(t, ok)
	assert.InDelta(t, 40.446111, deg, 1e-6)

	_, ok = DecimalDegrees(meta.Tag{Value: "40 26 46"})
	assert.False(t, ok)
	_, ok = DecimalDegrees(meta.Tag{Value: []meta.Rational{{Num: 1, Den: 1}}})
	assert.False(t, ok)
	_, ok = DecimalDegrees(meta.Tag{Value: []meta.Rational{{Num: 1, Den: 1}, {Num: 1, Den: 1}, {Num: 1, Den: 1}}, Malformed: "x"})
	assert.False(t, ok)
}

func TestEditIndicator(t *testing.T) {
	assert.True(t, CategorySoftwareEdit.EditIndicator())
	assert.True(t, CategoryModifyDate.EditIndicator())
	assert.False(t, CategoryCaptureDate.EditIndicator())
	assert.False(t, CategoryGPS.EditIndicator())
}
