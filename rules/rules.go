// Package rules holds the consistency checks run against decoded metadata.
// Each rule is a pure function of the two metadata views.
package rules

import (
	"greg-hacke/jpeg-forensics/meta"
	"greg-hacke/jpeg-forensics/tags"
)

// NotAvailable is rendered for identity fields the image does not carry
const NotAvailable = "not available"

// Rule names, in evaluation order
const (
	RuleSoftwareEdit    = "software-edit"
	RuleModifyDate      = "modify-date"
	RuleOriginalDate    = "original-date"
	RuleCameraIdentity  = "camera-identity"
	RuleGPSLocation     = "gps-location"
	RuleAuthorCopyright = "author-copyright"
)

// Rule evaluates one check
type Rule struct {
	Name     string
	Category Category
	Check    func(named meta.NamedView, coded meta.CodedView) Result
}

// Default is the fixed battery, in report order
var Default = []Rule{
	{RuleSoftwareEdit, CategorySoftwareEdit, CheckSoftware},
	{RuleModifyDate, CategoryModifyDate, CheckModifyDate},
	{RuleOriginalDate, CategoryCaptureDate, CheckOriginalDate},
	{RuleCameraIdentity, CategoryCameraIdentity, CheckCameraIdentity},
	{RuleGPSLocation, CategoryGPS, CheckGPSLocation},
	{RuleAuthorCopyright, CategoryAuthorship, CheckAuthorCopyright},
}

// Evaluate runs every rule of the default battery in order
func Evaluate(named meta.NamedView, coded meta.CodedView) []Result {
	results := make([]Result, 0, len(Default))
	for _, rule := range Default {
		results = append(results, rule.Check(named, coded))
	}
	return results
}

// CheckSoftware reports the editing software recorded in IFD0
func CheckSoftware(_ meta.NamedView, coded meta.CodedView) Result {
	r := Result{Rule: RuleSoftwareEdit, Category: CategorySoftwareEdit}
	if software, ok := coded.Resolve(tags.Software).Get(); ok {
		r.Detected = true
		r.add("Image edited with: %s", software)
	}
	return r
}

// CheckModifyDate reports the file modification timestamp. It is not
// compared with the capture time.
func CheckModifyDate(_ meta.NamedView, coded meta.CodedView) Result {
	r := Result{Rule: RuleModifyDate, Category: CategoryModifyDate}
	if modified, ok := coded.Resolve(tags.DateTime).Get(); ok {
		r.Detected = true
		r.add("Photo modified since creation. Modified: %s", modified)
	}
	return r
}

// CheckOriginalDate reports the capture and digitization timestamps
func CheckOriginalDate(_ meta.NamedView, coded meta.CodedView) Result {
	r := Result{Rule: RuleOriginalDate, Category: CategoryCaptureDate}
	if original, ok := coded.Resolve(tags.DateTimeOriginal).Get(); ok {
		r.Detected = true
		r.add("The shutter actuation time: %s", original)
	}
	if created, ok := coded.Resolve(tags.DateTimeDigitized).Get(); ok {
		r.Detected = true
		r.add("Image created at: %s", created)
	}
	return r
}

// Labels consulted by the identity block
const (
	LabelMake  = "Image Make"
	LabelModel = "Image Model"
	LabelISO   = "EXIF ISOSpeedRatings"
	LabelFlash = "EXIF Flash"
)

// CheckCameraIdentity always emits the identity block. Missing fields are
// shown as NotAvailable.
func CheckCameraIdentity(named meta.NamedView, _ meta.CodedView) Result {
	r := Result{Rule: RuleCameraIdentity, Category: CategoryCameraIdentity}

	field := func(label string) string {
		if tag, ok := named.Resolve(label).Get(); ok {
			return tag.String()
		}
		return NotAvailable
	}

	r.Detected = named.Resolve(LabelMake).Present() || named.Resolve(LabelModel).Present()
	r.add("Make: %s", field(LabelMake))
	r.add("Model: %s", field(LabelModel))
	r.add("ISO Speed: %s", field(LabelISO))
	r.add("Flash: %s", field(LabelFlash))
	return r
}

// CheckGPSLocation reports the recorded coordinates
func CheckGPSLocation(_ meta.NamedView, coded meta.CodedView) Result {
	r := Result{Rule: RuleGPSLocation, Category: CategoryGPS}
	if lat, ok := coded.Resolve(tags.GPSLatitude).Get(); ok {
		r.Detected = true
		r.add("Latitude: %s", coordinate(lat, coded.Resolve(tags.GPSLatitudeRef)))
	}
	if lon, ok := coded.Resolve(tags.GPSLongitude).Get(); ok {
		r.Detected = true
		r.add("Longitude: %s", coordinate(lon, coded.Resolve(tags.GPSLongitudeRef)))
	}
	return r
}

// CheckAuthorCopyright reports attribution fields
func CheckAuthorCopyright(_ meta.NamedView, coded meta.CodedView) Result {
	r := Result{Rule: RuleAuthorCopyright, Category: CategoryAuthorship}
	if author, ok := coded.Resolve(tags.Artist).Get(); ok {
		r.Detected = true
		r.add("Author: %s", author)
	}
	if copyright, ok := coded.Resolve(tags.Copyright).Get(); ok {
		r.Detected = true
		r.add("Copyright: %s", copyright)
	}
	return r
}
