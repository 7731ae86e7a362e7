package outline

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Heading shape thresholds. A heading is a short, wide, visually larger
// line; table rows and narrow columns are filtered out on line statistics.
const (
	headingMinRunes   = 3
	headingMaxSpans   = 3
	headingMinWidth   = 50.0
	headingSizeMargin = 1.0
	sizeBucketRadius  = 0.5
)

// Outline classifies every span in traversal order and returns the accepted
// entries in that same order. Page-one spans whose text is contained in the
// already-extracted title are suppressed so the title never resurfaces as a
// heading. The result is never nil.
func (c *Classifier) Outline(spans []Span, profile FontProfile, title string) []Entry {
	entries := []Entry{}
	for _, s := range spans {
		if !c.isHeadingCandidate(s, profile.BodySize) {
			continue
		}
		if s.Page == 1 && strings.Contains(title, s.Text) {
			continue
		}
		level := c.level(s, profile)
		if level == "" {
			continue
		}
		entries = append(entries, Entry{Level: level, Text: s.Text, Page: s.Page})
	}
	return entries
}

// isHeadingCandidate applies the rejection rules in order; the first failing
// rule wins.
func (c *Classifier) isHeadingCandidate(s Span, bodySize float64) bool {
	txt := s.Text
	if txt == "" || utf8.RuneCountInString(txt) < headingMinRunes {
		return false
	}
	lower := strings.ToLower(txt)
	for _, phrase := range c.stop {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	if c.bareNumber.MatchString(txt) {
		return false
	}
	if c.dateDMY.MatchString(txt) || c.dateYMD.MatchString(txt) {
		return false
	}
	if s.LineSpanCount > headingMaxSpans {
		return false
	}
	if s.LineAvgWidth < headingMinWidth {
		return false
	}
	if len(strings.Fields(txt)) == 1 && !c.numPrefix.MatchString(txt) {
		return false
	}
	return s.FontSize > bodySize+headingSizeMargin
}

// level assigns the heading tier. Decimal numbering prefixes outrank font
// size: "2.1 ..." is always H3 and "1 ..." always H2, whatever their size.
// A span matching no tier is not a heading.
func (c *Classifier) level(s Span, profile FontProfile) string {
	switch {
	case c.h3Prefix.MatchString(s.Text):
		return "H3"
	case c.h2Prefix.MatchString(s.Text):
		return "H2"
	case math.Abs(s.FontSize-profile.H1Size) < sizeBucketRadius:
		return "H1"
	case math.Abs(s.FontSize-profile.H2Size) < sizeBucketRadius:
		return "H2"
	case math.Abs(s.FontSize-profile.H3Size) < sizeBucketRadius:
		return "H3"
	}
	return ""
}
