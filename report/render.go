package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"greg-hacke/jpeg-forensics/rules"
)

// RenderOptions configures the text renderer
type RenderOptions struct {
	NoColor bool
	NoDump  bool
}

const dumpRule = "============================================================="

// Render writes the report as plain text: findings in rule order, the
// camera identity block, then the raw tag dump.
func Render(w io.Writer, r *Report, opts RenderOptions) error {
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if opts.NoColor {
			c.DisableColor()
		}
		return c
	}
	warn := paint(color.FgYellow)
	alert := paint(color.FgRed, color.Bold)
	heading := paint(color.Bold, color.FgCyan)

	pw := &printer{w: w}

	if r.Stripped {
		warn.Fprintln(pw, r.Notice)
		return pw.err
	}

	for _, res := range r.Results {
		if res.Rule == rules.RuleCameraIdentity {
			pw.println()
			heading.Fprintln(pw, "Camera Information")
			for _, f := range res.Findings {
				pw.println(identityLine(f.Message))
			}
			continue
		}
		for _, f := range res.Findings {
			if f.Category.EditIndicator() {
				alert.Fprintln(pw, f.Message)
			} else {
				pw.println(f.Message)
			}
		}
	}

	if !opts.NoDump && len(r.Dump) > 0 {
		pw.println()
		heading.Fprintln(pw, "RAW IMAGE METADATA")
		pw.println(dumpRule)
		pw.println()
		pw.println("EXIF Data")
		for _, field := range r.Dump {
			fmt.Fprintf(pw, "%-35s: %s\n", field.Name, field.Value)
		}
	}

	return pw.err
}

// identityLine aligns "Key: value" pairs of the camera block
func identityLine(msg string) string {
	key, value, ok := strings.Cut(msg, ": ")
	if !ok {
		return msg
	}
	return fmt.Sprintf("%-11s %s", key+":", value)
}

// printer keeps the first write error so rendering code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) println(a ...any) {
	fmt.Fprintln(p, a...)
}
