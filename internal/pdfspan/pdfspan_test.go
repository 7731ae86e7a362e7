package pdfspan

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// writeFixture renders a PDF with point units so font sizes and coordinates
// line up with what the parser reports.
func writeFixture(t *testing.T, path string, draw func(p *gofpdf.Fpdf)) {
	t.Helper()
	p := gofpdf.New("P", "pt", "A4", "")
	p.AddPage()
	draw(p)
	if err := p.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestSpans_SingleLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.pdf")
	writeFixture(t, path, func(p *gofpdf.Fpdf) {
		p.SetFont("Helvetica", "", 24)
		p.Text(72, 100, "Project Plan")
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	spans, err := doc.Spans()
	if err != nil {
		t.Fatalf("spans: %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %+v", len(spans), spans)
	}
	s := spans[0]
	if s.Text != "Project Plan" {
		t.Fatalf("text = %q", s.Text)
	}
	if math.Abs(s.FontSize-24) > 0.01 {
		t.Fatalf("font size = %v, want 24", s.FontSize)
	}
	if s.Page != 1 {
		t.Fatalf("page = %d, want 1", s.Page)
	}
	if s.LineSpanCount != 1 {
		t.Fatalf("line span count = %d, want 1", s.LineSpanCount)
	}
	if s.Width() < 100 {
		t.Fatalf("width = %v, want a title-sized box", s.Width())
	}
}

func TestSpans_MixedSizesShareLineStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.pdf")
	writeFixture(t, path, func(p *gofpdf.Fpdf) {
		p.SetFont("Helvetica", "", 12)
		p.Text(72, 200, "Alpha")
		p.SetFont("Helvetica", "", 18)
		p.Text(200, 200, "Beta")
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	spans, err := doc.Spans()
	if err != nil {
		t.Fatalf("spans: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(spans), spans)
	}
	if spans[0].Text != "Alpha" || spans[1].Text != "Beta" {
		t.Fatalf("span order = %q, %q", spans[0].Text, spans[1].Text)
	}
	for _, s := range spans {
		if s.LineSpanCount != 2 {
			t.Fatalf("%q: line span count = %d, want 2", s.Text, s.LineSpanCount)
		}
		if s.LineAvgWidth != spans[0].LineAvgWidth {
			t.Fatalf("line avg width differs across spans of one line")
		}
	}
	wantAvg := (spans[0].Width() + spans[1].Width()) / 2
	if math.Abs(spans[0].LineAvgWidth-wantAvg) > 0.01 {
		t.Fatalf("line avg width = %v, want %v", spans[0].LineAvgWidth, wantAvg)
	}
}

func TestSpans_TopOfPageFirst(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.pdf")
	writeFixture(t, path, func(p *gofpdf.Fpdf) {
		p.SetFont("Helvetica", "", 12)
		p.Text(72, 700, "Lower Line")
		p.Text(72, 80, "Upper Line")
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	spans, err := doc.Spans()
	if err != nil {
		t.Fatalf("spans: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(spans), spans)
	}
	if spans[0].Text != "Upper Line" || spans[1].Text != "Lower Line" {
		t.Fatalf("order = %q, %q; want top of page first", spans[0].Text, spans[1].Text)
	}
	if spans[0].Y0 >= spans[1].Y0 {
		t.Fatalf("y0 = %v, %v; want top-origin coordinates ascending", spans[0].Y0, spans[1].Y0)
	}
}

func TestSpans_PagesInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages.pdf")
	p := gofpdf.New("P", "pt", "A4", "")
	p.SetFont("Helvetica", "", 12)
	p.AddPage()
	p.Text(72, 100, "First Page")
	p.AddPage()
	p.Text(72, 100, "Second Page")
	if err := p.OutputFileAndClose(path); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	if doc.NumPage() != 2 {
		t.Fatalf("pages = %d, want 2", doc.NumPage())
	}
	spans, err := doc.Spans()
	if err != nil {
		t.Fatalf("spans: %v", err)
	}
	if len(spans) != 2 || spans[0].Page != 1 || spans[1].Page != 2 {
		t.Fatalf("spans = %+v, want one per page in page order", spans)
	}
}

func TestSpans_EmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	writeFixture(t, path, func(p *gofpdf.Fpdf) {})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer doc.Close()

	spans, err := doc.Spans()
	if err != nil {
		t.Fatalf("spans: %v", err)
	}
	if len(spans) != 0 {
		t.Fatalf("spans = %+v, want none", spans)
	}
}

func TestOpen_Missing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpen_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if doc, err := Open(path); err == nil {
		doc.Close()
		t.Fatal("expected error for non-PDF bytes")
	}
}
