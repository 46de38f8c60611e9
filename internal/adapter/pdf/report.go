// Package pdf renders a full assessment as a PDF document.
package pdf

import (
	"fmt"
	"io"

	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/go-pdf/fpdf"
)

// ContentType is the media type of the generated document.
const ContentType = "application/pdf"

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

type rgb struct{ r, g, b int }

var (
	headingColor = rgb{0, 51, 102}
	bodyColor    = rgb{50, 50, 50}
	mutedColor   = rgb{120, 120, 120}
	fillColor    = rgb{245, 247, 250}
	drawColor    = rgb{200, 200, 200}

	scoreLow  = rgb{200, 40, 40}
	scoreMid  = rgb{230, 140, 20}
	scoreHigh = rgb{40, 150, 60}
)

type assessmentReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	a   domain.Assessment
}

// Render writes the assessment to w.
func Render(w io.Writer, a domain.Assessment) error {
	doc := fpdf.New("P", "mm", "A4", "")
	r := &assessmentReport{
		pdf: doc,
		// Core fonts are cp1252; this maps "³" and friends.
		tr: doc.UnicodeTranslatorFromDescriptor(""),
		a:  a,
	}

	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetTitle("Stormwater Assessment Report", true)

	doc.AddPage()
	r.addTitle()
	r.addSummary()
	r.addConditions()
	r.addEntries()

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (r *assessmentReport) addTitle() {
	r.setText(headingColor)
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(contentWidth, 12, "Stormwater Assessment Report", "", 1, "C", false, 0, "")

	r.setText(mutedColor)
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6, "Generated: "+r.a.GeneratedAt.Format("2 January 2006 15:04"), "", 1, "C", false, 0, "")
	r.pdf.Ln(8)
}

func (r *assessmentReport) addSummary() {
	r.heading("Asset Management Summary")

	rep := r.a.Report
	rows := [][2]string{
		{"General Condition Rating (GCR)", rep.GCR},
		{"Asset Classification", rep.Classification},
		{"Rehabilitation Strategies", rep.StrategiesText()},
		{"Preservation vs Replacement", rep.Preservation + "%"},
	}

	r.pdf.SetFont("Arial", "", 10)
	r.setText(bodyColor)
	for _, row := range rows {
		r.pdf.CellFormat(70, 7, r.tr(row[0]), "1", 0, "L", true, 0, "")
		r.pdf.MultiCell(contentWidth-70, 7, r.tr(row[1]), "1", "L", false)
	}
	r.pdf.Ln(6)
}

func (r *assessmentReport) addConditions() {
	r.heading("Condition Ratings")

	if len(r.a.Conditions) == 0 {
		r.empty("No conditions rated.")
		return
	}

	r.pdf.SetFont("Arial", "", 10)
	for _, c := range r.a.Conditions {
		r.setText(bodyColor)
		r.pdf.CellFormat(contentWidth-30, 7, r.tr(c.Label), "1", 0, "L", true, 0, "")

		col := scoreColor(c.Rating)
		r.pdf.SetFillColor(col.r, col.g, col.b)
		r.pdf.SetTextColor(255, 255, 255)
		r.pdf.SetFont("Arial", "B", 10)
		r.pdf.CellFormat(30, 7, fmt.Sprintf("%d/10", c.Rating), "1", 1, "C", true, 0, "")
		r.pdf.SetFillColor(fillColor.r, fillColor.g, fillColor.b)
		r.pdf.SetFont("Arial", "", 10)
	}
	r.pdf.Ln(6)
}

func (r *assessmentReport) addEntries() {
	r.heading("Saved Performance Features")

	if len(r.a.Entries) == 0 {
		r.empty("No features saved.")
		return
	}

	r.pdf.SetFont("Arial", "B", 10)
	r.setText(headingColor)
	r.pdf.CellFormat(45, 7, "Feature", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(contentWidth-45, 7, "Inputs", "1", 1, "L", true, 0, "")

	r.pdf.SetFont("Arial", "", 9)
	r.setText(bodyColor)
	for _, e := range r.a.Entries {
		r.pdf.CellFormat(45, 6, r.tr(e.Feature), "1", 0, "L", false, 0, "")
		r.pdf.MultiCell(contentWidth-45, 6, r.tr(e.Summary()), "1", "L", false)
	}
}

func (r *assessmentReport) heading(title string) {
	r.pdf.SetFillColor(fillColor.r, fillColor.g, fillColor.b)
	r.pdf.SetDrawColor(drawColor.r, drawColor.g, drawColor.b)
	r.pdf.SetFont("Arial", "B", 12)
	r.setText(headingColor)
	r.pdf.CellFormat(contentWidth, 8, title, "B", 1, "L", false, 0, "")
	r.pdf.Ln(2)
}

func (r *assessmentReport) empty(msg string) {
	r.pdf.SetFont("Arial", "I", 10)
	r.setText(mutedColor)
	r.pdf.CellFormat(contentWidth, 7, msg, "", 1, "L", false, 0, "")
	r.pdf.Ln(4)
}

func (r *assessmentReport) setText(c rgb) {
	r.pdf.SetTextColor(c.r, c.g, c.b)
}

// scoreColor grades a 0-10 rating: below 4 is poor, below 7 is fair.
func scoreColor(rating int) rgb {
	switch {
	case rating < 4:
		return scoreLow
	case rating < 7:
		return scoreMid
	default:
		return scoreHigh
	}
}
