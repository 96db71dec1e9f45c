// Package pdf renders a structured CV to an A4 PDF file. Two fixed layouts
// are supported: a full-width accent banner ("classic") and an accent left
// column ("sidebar"). The drawing is a simple top-down cursor; long CVs
// flow onto additional pages.
package pdf

import (
	"fmt"
	"strconv"
	"strings"

	"cartable/internal/domain"

	"github.com/go-pdf/fpdf"
)

// Options selects the layout and accent color for the export.
type Options struct {
	Template string // "classic" or "sidebar"
	Accent   string // hex color, e.g. "#2C3E50"
}

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	margin     = 20.0
	lineHeight = 4.5
	bottom     = pageHeight - margin
)

// Section is one titled block of body lines on the rendered page.
type Section struct {
	Title string
	Lines []string
}

// Sections flattens a CV into the ordered section list the renderer draws.
// Empty sections are omitted.
func Sections(cv domain.CV) []Section {
	var sections []Section
	add := func(title string, lines []string) {
		if len(lines) > 0 {
			sections = append(sections, Section{Title: title, Lines: lines})
		}
	}

	if strings.TrimSpace(cv.Profile) != "" {
		add("Profile", strings.Split(cv.Profile, "\n"))
	}
	add("Education", cv.Education)
	add("Skills", cv.Skills)

	var experience []string
	for _, e := range cv.Experience {
		head := strings.TrimSpace(strings.Join(nonEmpty(e.Title, e.Company, e.Dates), " - "))
		if head != "" {
			experience = append(experience, head)
		}
		for _, b := range e.Bullets {
			experience = append(experience, "  - "+b)
		}
	}
	add("Experience", experience)
	add("Projects", cv.Projects)
	add("Languages", cv.Languages)
	add("Interests", cv.Interests)
	return sections
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Export renders the CV to path. An unknown template falls back to the
// sidebar layout, an unparseable accent to a dark slate default.
func Export(path string, cv domain.CV, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	r, g, b := accentRGB(opts.Accent)

	var y float64
	if strings.EqualFold(opts.Template, "classic") {
		y = drawClassicHeader(pdf, tr, cv.Header, r, g, b)
	} else {
		y = drawSidebarHeader(pdf, tr, cv.Header, r, g, b)
	}

	pdf.SetTextColor(0, 0, 0)
	for _, section := range Sections(cv) {
		if y > bottom-3*lineHeight {
			pdf.AddPage()
			y = margin
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(margin, y, tr(section.Title))
		y += lineHeight + 1

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range section.Lines {
			if y > bottom {
				pdf.AddPage()
				y = margin
			}
			pdf.Text(margin, y, tr(line))
			y += lineHeight
		}
		y += lineHeight
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return domain.NewInternalError(fmt.Sprintf("Failed to write PDF to %s", path), err)
	}
	return nil
}

// drawClassicHeader paints a full-width accent banner with white text and
// returns the content cursor below it.
func drawClassicHeader(pdf *fpdf.Fpdf, tr func(string) string, header domain.CVHeader, r, g, b int) float64 {
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, pageWidth, 30, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(margin, 13, tr(header.FullName))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(margin, 21, tr(header.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, 27, tr(header.Contact))

	return 42
}

// drawSidebarHeader paints an accent left column and puts the header text
// to its right.
func drawSidebarHeader(pdf *fpdf.Fpdf, tr func(string) string, header domain.CVHeader, r, g, b int) float64 {
	const left = 60.0
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, left, pageHeight, "F")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(left+margin, 20, tr(header.FullName))
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(left+margin, 28, tr(header.Title))
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(left+margin, 34, tr(header.Contact))

	return 46
}

// accentRGB parses a "#RRGGBB" color, falling back to dark slate when the
// value is malformed.
func accentRGB(hex string) (int, int, int) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 {
		return 44, 62, 80
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 44, 62, 80
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
