// Package outline infers a document title and a three-level section outline
// from positioned text spans produced by a PDF layout parser.
package outline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is one styled run of text on a page, as produced by the normalizer.
// LineSpanCount and LineAvgWidth are line-level statistics shared by every
// span on the same line.
type Span struct {
	Text          string
	X0, Y0        float64
	X1, Y1        float64
	FontSize      float64
	Page          int
	LineSpanCount int
	LineAvgWidth  float64
}

// Width returns the horizontal extent of the span's bounding box.
func (s Span) Width() float64 { return s.X1 - s.X0 }

// Entry is one outline row. Level is "H1", "H2" or "H3".
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the per-document artifact: a title, possibly empty, and the
// headings in the order they were first encountered.
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}

// Options tunes the classifier. The zero value uses the built-in script
// ranges and stop phrases; Extra fields append to them.
type Options struct {
	ExtraScripts     []ScriptRange
	ExtraStopPhrases []string
}

// Classifier holds the compiled heuristics. It is stateless across
// documents and safe for concurrent use.
type Classifier struct {
	scripts []ScriptRange
	stop    []string

	bareNumber *regexp.Regexp
	dateDMY    *regexp.Regexp
	dateYMD    *regexp.Regexp
	numPrefix  *regexp.Regexp
	h3Prefix   *regexp.Regexp
	h2Prefix   *regexp.Regexp
}

// New builds a Classifier from opts.
func New(opts Options) *Classifier {
	scripts := append(DefaultScripts(), opts.ExtraScripts...)
	stop := append(defaultStopPhrases(), opts.ExtraStopPhrases...)
	for i, p := range stop {
		stop[i] = strings.ToLower(p)
	}
	return &Classifier{
		scripts:    scripts,
		stop:       stop,
		bareNumber: regexp.MustCompile(`^\d{1,2}$`),
		dateDMY:    regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`),
		dateYMD:    regexp.MustCompile(`^\d{4}[-/]\d{1,2}[-/]\d{1,2}$`),
		numPrefix:  regexp.MustCompile(`^\d+\.`),
		h3Prefix:   regexp.MustCompile(`^\d+\.\d+\s`),
		h2Prefix:   regexp.MustCompile(`^\d+\s`),
	}
}

// Document runs the full per-document pipeline over the normalized spans.
// A document with zero spans yields an empty title and an empty, non-nil
// outline.
func (c *Classifier) Document(spans []Span) Result {
	res := Result{Outline: []Entry{}}
	if len(spans) == 0 {
		return res
	}
	profile := Fonts(spans)
	res.Title = c.Title(spans)
	res.Outline = c.Outline(spans, profile, res.Title)
	return res
}

// hasAlnum reports whether s contains at least one letter or digit.
func hasAlnum(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// punctRatio returns the fraction of runes that are ASCII punctuation.
func punctRatio(s string) float64 {
	if s == "" {
		return 0
	}
	total, punct := 0, 0
	for _, r := range s {
		total++
		if strings.ContainsRune(asciiPunct, r) {
			punct++
		}
	}
	return float64(punct) / float64(total)
}

// isAllCaps reports whether s has at least one cased letter and none of its
// cased letters are lowercase.
func isAllCaps(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// isLoneSymbol reports whether s is a single rune that is neither a word
// character nor part of a whitelisted script range. Stray bullets and box
// glyphs land here; short non-Latin words do not.
func (c *Classifier) isLoneSymbol(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}
	if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !inScripts(r, c.scripts)
}
