// Package pdfspan adapts a PDF parsing library into the flat span stream the
// outline classifier consumes. It owns the document handle and the span
// normalizer; it never filters on content, only on geometry.
package pdfspan

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/hyperifyio/pdfoutline/internal/outline"
)

// Document wraps one open PDF file.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the PDF at path. The caller must Close the document on every
// path once done with it.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Document{f: f, r: r}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error { return d.f.Close() }

// NumPage returns the page count.
func (d *Document) NumPage() int { return d.r.NumPage() }

// Spans normalizes every page into a single flat slice in (page, line, span)
// traversal order, top of page first. The parser panics on some malformed
// documents; that is converted into an error so a corrupt file stays a
// per-file failure.
func (d *Document) Spans() (spans []outline.Span, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract spans: %v", r)
		}
	}()
	for n := 1; n <= d.r.NumPage(); n++ {
		p := d.r.Page(n)
		if p.V.IsNull() {
			continue
		}
		spans = append(spans, normalizePage(p, n)...)
	}
	return spans, nil
}
