package rules

import "fmt"

// Category classifies what a finding reports on
type Category string

const (
	CategorySoftwareEdit   Category = "software-edit"
	CategoryModifyDate     Category = "modify-date"
	CategoryCaptureDate    Category = "capture-date"
	CategoryCameraIdentity Category = "camera-identity"
	CategoryGPS            Category = "gps"
	CategoryAuthorship     Category = "authorship"
)

func (c Category) String() string {
	return string(c)
}

// EditIndicator reports whether findings of this category suggest the image
// was processed after capture.
func (c Category) EditIndicator() bool {
	return c == CategorySoftwareEdit || c == CategoryModifyDate
}

// Finding is one forensic observation
type Finding struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Category Category `json:"category" yaml:"category"`
	Message  string   `json:"message" yaml:"message"`
}

// Result is the outcome of one rule. Detected is the rule's trigger flag;
// a rule that always reports, such as camera identity, may carry findings
// while not detected.
type Result struct {
	Rule     string    `json:"rule" yaml:"rule"`
	Category Category  `json:"category" yaml:"category"`
	Detected bool      `json:"detected" yaml:"detected"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

func (r *Result) add(format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Rule:     r.Rule,
		Category: r.Category,
		Message:  fmt.Sprintf(format, args...),
	})
}
