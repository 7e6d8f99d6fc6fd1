package pdfparser

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the vertical distance, in points, under which two text
// runs belong to the same printed line.
const rowTolerance = 2.0

// NativeExtractor reads PDF text in-process with github.com/ledongthuc/pdf.
// Text runs are grouped into rows by their baseline, rows are ordered top to
// bottom and runs left to right.
type NativeExtractor struct{}

// NewNativeExtractor creates a NativeExtractor.
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// ExtractText returns the text of every page, one printed line per line.
func (e *NativeExtractor) ExtractText(pdfPath string) (text string, err error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing PDF: %w", cerr)
		}
	}()

	// The reader panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("error reading PDF content: %v", rec)
		}
	}()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		rows := groupTextsIntoRows(p.Content().Text)
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			lines = append(lines, row.String())
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n"), nil
}

type textRow struct {
	y     float64
	texts []pdf.Text
}

// String joins the row's runs left to right, inserting a space where the
// gap between two runs is wider than a fraction of the font size.
func (r textRow) String() string {
	sort.SliceStable(r.texts, func(i, j int) bool { return r.texts[i].X < r.texts[j].X })

	var b strings.Builder
	var prevEnd float64
	for i, t := range r.texts {
		if i > 0 {
			gap := t.X - prevEnd
			if gap > 0.2*math.Max(t.FontSize, 1) && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func groupTextsIntoRows(texts []pdf.Text) []textRow {
	var rows []textRow
	for _, t := range texts {
		if t.S == "" {
			continue
		}
		placed := false
		for i := range rows {
			if math.Abs(rows[i].y-t.Y) < rowTolerance {
				rows[i].texts = append(rows[i].texts, t)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, textRow{y: t.Y, texts: []pdf.Text{t}})
		}
	}

	// PDF coordinates grow upwards.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	out := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(row.String()) != "" {
			out = append(out, row)
		}
	}
	return out
}
