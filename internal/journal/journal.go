// Package journal prints the chat log as a parchment-style travel journal
// PDF, one section per travel action.
package journal

import (
	"bytes"
	"html"
	"math"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"partysheet/internal/travel"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 40
	inset     = 64.0
	fontSize  = 10
	titleSize = 18
	headSize  = 12
	lineH     = 13.0
)

// otherSection collects messages not tied to a travel action.
const otherSection = "On the Road"

// Section is the messages of one journal entry, in posting order.
type Section struct {
	Name     string
	Messages []travel.ChatMessage
}

// Sections groups messages by journal entry name in order of first use.
func Sections(msgs []travel.ChatMessage) []Section {
	var out []Section
	index := map[string]int{}
	for _, m := range msgs {
		name := m.Journal
		if name == "" {
			name = otherSection
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, Section{Name: name})
		}
		out[i].Messages = append(out[i].Messages, m)
	}
	return out
}

// Generate returns the PDF bytes of the travel journal for msgs.
func Generate(title string, msgs []travel.ChatMessage) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(inset, inset, inset)
	pdf.SetAutoPageBreak(true, inset)
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(245, 235, 210)
		pdf.Rect(0, 0, pageW, pageH, "F")
		drawWavyBorder(pdf)
		pdf.SetXY(inset, inset)
	})
	pdf.AddPage()

	pdf.SetTextColor(80, 50, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 22, tr("Travel Journal"), "", 1, "L", false, 0, "")
	if title != "" {
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.CellFormat(0, 14, tr(title), "", 1, "L", false, 0, "")
	}
	drawCompassRose(pdf, pageW-inset-30, inset+24)
	pdf.Ln(16)

	sections := Sections(msgs)
	if len(sections) == 0 {
		pdf.SetFont("Helvetica", "I", fontSize)
		pdf.CellFormat(0, lineH, tr("The road has been quiet."), "", 1, "L", false, 0, "")
	}
	for _, s := range sections {
		pdf.SetFont("Helvetica", "B", headSize)
		pdf.SetTextColor(120, 40, 30)
		pdf.CellFormat(0, 18, tr(strings.ToUpper(s.Name)), "", 1, "L", false, 0, "")
		pdf.SetTextColor(40, 25, 15)
		for _, m := range s.Messages {
			pdf.SetFont("Helvetica", "I", fontSize-2)
			if !m.CreatedAt.IsZero() {
				pdf.CellFormat(0, lineH-2, m.CreatedAt.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
			}
			pdf.SetFont("Helvetica", "", fontSize)
			pdf.MultiCell(0, lineH, tr(PlainText(m.Content)), "", "L", false)
			pdf.Ln(4)
		}
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var (
	breakTag = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag   = regexp.MustCompile(`<[^>]*>`)
)

// PlainText flattens chat markup to text.
func PlainText(content string) string {
	s := breakTag.ReplaceAllString(content, "\n")
	s = anyTag.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}

// drawWavyBorder draws a tattered ink border around the page.
func drawWavyBorder(pdf *gofpdf.Fpdf) {
	pts := wavyRectPoints(margin, margin, pageW-2*margin, pageH-2*margin, 12, 4)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(2)
	pdf.Polygon(pts, "D")
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}

// wavyRectPoints walks the rectangle clockwise from its top-left corner,
// wobbling each side with its own frequencies.
func wavyRectPoints(x, y, w, h float64, steps int, amp float64) []gofpdf.PointType {
	sides := []struct {
		x0, y0, dx, dy float64
		fx, fy         float64
	}{
		{x, y, w, 0, 0.7, 0.5},
		{x + w, y, 0, h, 0.6, 0.4},
		{x + w, y + h, -w, 0, 0.8, 0.3},
		{x, y + h, 0, -h, 0.5, 0.6},
	}
	pts := make([]gofpdf.PointType, 0, steps*4+1)
	for n, s := range sides {
		first := 1
		if n == 0 {
			first = 0
		}
		for i := first; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, gofpdf.PointType{
				X: s.x0 + t*s.dx + amp*math.Sin(float64(i)*s.fx),
				Y: s.y0 + t*s.dy + amp*math.Cos(float64(i)*s.fy),
			})
		}
	}
	return pts
}

// drawCompassRose draws a small eight-point compass rose.
func drawCompassRose(pdf *gofpdf.Fpdf, cx, cy float64) {
	const rad = 18.0
	pdf.SetDrawColor(101, 67, 33)
	pdf.SetLineWidth(1)
	pdf.Circle(cx, cy, rad, "D")
	for i := 0; i < 8; i++ {
		angle := float64(i)*45.0*math.Pi/180 - math.Pi/2
		if i%2 == 0 {
			pdf.SetDrawColor(180, 40, 40)
			pdf.SetLineWidth(1.5)
		} else {
			pdf.SetDrawColor(180, 140, 60)
			pdf.SetLineWidth(1)
		}
		pdf.Line(cx, cy, cx+rad*math.Cos(angle), cy+rad*math.Sin(angle))
	}
	pdf.SetLineWidth(1)
	pdf.SetDrawColor(80, 50, 30)
}
