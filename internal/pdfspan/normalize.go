package pdfspan

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/pdfoutline/internal/outline"
)

const (
	// rowTolerance groups fragments whose baselines sit within this many
	// points into one line.
	rowTolerance = 3.0
	// wordGapRatio: a gap wider than this fraction of the font size, or
	// wider than minWordGap at any size, separates words the content
	// stream positioned instead of spacing. A gap wider than spanGapRatio
	// of the font size starts a new span: that is a column or table-cell
	// boundary, not a word break.
	wordGapRatio = 0.3
	minWordGap   = 3.0
	spanGapRatio = 1.5
	// glyphAdvanceRatio approximates one glyph's advance as a fraction of
	// the font size when the parser reports no width at all.
	glyphAdvanceRatio = 0.5
	// defaultLineWidth is the permissive average width for a line with no
	// non-empty spans, so such lines fail no width filter downstream.
	defaultLineWidth = 100.0
)

// letterWidth/letterHeight: US Letter fallback when the MediaBox is missing
// or unusable.
const (
	letterWidth  = 612.0
	letterHeight = 792.0
)

// normalizePage flattens one page into spans. The parser reports fragments
// in content-stream order with bottom-origin baselines; lines are rebuilt by
// baseline proximity and emitted top of page first.
func normalizePage(p pdf.Page, pageNum int) []outline.Span {
	frags := p.Content().Text
	if len(frags) == 0 {
		return nil
	}
	_, pageH := pageSize(p)

	rows := groupRows(frags)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })

	var spans []outline.Span
	for _, row := range rows {
		spans = append(spans, lineSpans(row, pageH, pageNum)...)
	}
	return spans
}

// row is one reconstructed text line: every fragment whose baseline falls
// within rowTolerance of the bucket.
type row struct {
	yMin, yMax float64
	y          float64
	frags      []pdf.Text
}

func groupRows(frags []pdf.Text) []row {
	var rows []row
	for _, t := range frags {
		placed := false
		for i := range rows {
			if t.Y >= rows[i].yMin-rowTolerance && t.Y <= rows[i].yMax+rowTolerance {
				rows[i].frags = append(rows[i].frags, t)
				if t.Y < rows[i].yMin {
					rows[i].yMin = t.Y
				}
				if t.Y > rows[i].yMax {
					rows[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{yMin: t.Y, yMax: t.Y, frags: []pdf.Text{t}})
		}
	}
	for i := range rows {
		rows[i].y = rows[i].yMax
	}
	return rows
}

// lineSpans assembles one line's fragments into spans: left to right, a new
// span on every font or size change, a space wherever the stream left a
// word-sized gap. Line statistics are computed once and stamped on every
// span of the line, empty spans included.
func lineSpans(ln row, pageH float64, pageNum int) []outline.Span {
	frags := make([]pdf.Text, len(ln.frags))
	copy(frags, ln.frags)
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].X < frags[j].X })
	estimateAdvances(frags)

	type rawSpan struct {
		text   string
		x0, x1 float64
		size   float64
	}

	var (
		raws    []rawSpan
		b       strings.Builder
		x0, x1  float64
		curFont string
		curSize float64
		inSpan  bool
	)
	flush := func() {
		if !inSpan {
			return
		}
		raws = append(raws, rawSpan{text: b.String(), x0: x0, x1: x1, size: curSize})
		b.Reset()
		inSpan = false
	}
	for _, t := range frags {
		gap := t.X - x1
		switch {
		case !inSpan || t.Font != curFont || t.FontSize != curSize || gap > spanGapRatio*t.FontSize:
			flush()
			curFont, curSize = t.Font, t.FontSize
			x0 = t.X
			inSpan = true
		case gap > wordGapRatio*t.FontSize || gap > minWordGap:
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		x1 = t.X + t.W
	}
	flush()

	count := 0
	var widthSum float64
	for _, r := range raws {
		if strings.TrimSpace(r.text) != "" {
			count++
		}
		widthSum += r.x1 - r.x0
	}
	avg := defaultLineWidth
	if count > 0 {
		avg = widthSum / float64(count)
	}

	spans := make([]outline.Span, 0, len(raws))
	for _, r := range raws {
		y1 := pageH - ln.y
		spans = append(spans, outline.Span{
			Text:          strings.TrimSpace(norm.NFC.String(r.text)),
			X0:            r.x0,
			Y0:            y1 - r.size,
			X1:            r.x1,
			Y1:            y1,
			FontSize:      r.size,
			Page:          pageNum,
			LineSpanCount: count,
			LineAvgWidth:  avg,
		})
	}
	return spans
}

// estimateAdvances fills in glyph advances for fragments reported with zero
// width. Non-embedded base-14 fonts carry no width table the parser can read,
// so every character of a show-text run lands at the run origin with W=0; the
// advance is approximated from the font size and the pen position accumulated
// left to right across the line. Fragments with real widths pass through
// untouched.
func estimateAdvances(frags []pdf.Text) {
	var pen float64
	for i := range frags {
		t := &frags[i]
		if t.W <= 0 {
			t.W = glyphAdvanceRatio * t.FontSize * float64(utf8.RuneCountInString(t.S))
			if i > 0 && t.X < pen {
				t.X = pen
			}
		}
		pen = t.X + t.W
	}
}

// pageSize reads the page MediaBox, falling back to US Letter when it is
// absent or malformed.
func pageSize(p pdf.Page) (w, h float64) {
	w, h = letterWidth, letterHeight
	box := p.V.Key("MediaBox")
	if box.Kind() != pdf.Array || box.Len() != 4 {
		return w, h
	}
	var vals [4]float64
	for i := 0; i < 4; i++ {
		v := box.Index(i)
		switch v.Kind() {
		case pdf.Integer:
			vals[i] = float64(v.Int64())
		case pdf.Real:
			vals[i] = v.Float64()
		default:
			return w, h
		}
	}
	if vals[2] > vals[0] && vals[3] > vals[1] {
		w, h = vals[2]-vals[0], vals[3]-vals[1]
	}
	return w, h
}
