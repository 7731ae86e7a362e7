package outline

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Title band and shape thresholds. A candidate must look like display text:
// wide enough and large enough to be a title line rather than body copy.
const (
	titleMinWidth    = 100.0
	titleMinFontSize = 10.0
	titleFontBand    = 1.0
	titleMaxPunct    = 0.6
	titleMaxCapsWord = 5
)

// Title infers the document title from the page-one spans. All candidates
// within one point of the largest candidate font size form the title band;
// their texts are joined top to bottom with duplicates dropped. Returns the
// empty string when no span qualifies.
func (c *Classifier) Title(spans []Span) string {
	var cands []Span
	for _, s := range spans {
		if s.Page != 1 {
			continue
		}
		if c.isTitleCandidate(s) {
			cands = append(cands, s)
		}
	}
	if len(cands) == 0 {
		return ""
	}

	maxFont := cands[0].FontSize
	for _, s := range cands[1:] {
		if s.FontSize > maxFont {
			maxFont = s.FontSize
		}
	}

	band := cands[:0]
	for _, s := range cands {
		if s.FontSize >= maxFont-titleFontBand {
			band = append(band, s)
		}
	}
	sort.SliceStable(band, func(i, j int) bool { return band[i].Y0 < band[j].Y0 })

	seen := make(map[string]struct{}, len(band))
	parts := make([]string, 0, len(band))
	for _, s := range band {
		if _, dup := seen[s.Text]; dup {
			continue
		}
		seen[s.Text] = struct{}{}
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " ")
}

func (c *Classifier) isTitleCandidate(s Span) bool {
	txt := s.Text
	if txt == "" {
		return false
	}
	// A single character must be a word character or belong to a script
	// range; longer text needs at least one letter or digit.
	if utf8.RuneCountInString(txt) == 1 {
		if c.isLoneSymbol(txt) {
			return false
		}
	} else if !hasAlnum(txt) {
		return false
	}
	if punctRatio(txt) > titleMaxPunct {
		return false
	}
	lower := strings.ToLower(txt)
	for _, sub := range []string{"www.", ".com", ".org", ".net"} {
		if strings.Contains(lower, sub) {
			return false
		}
	}
	// All-caps banners ("TOTAL", "CONFIDENTIAL") are page furniture, not titles.
	if isAllCaps(txt) && len(strings.Fields(txt)) <= titleMaxCapsWord {
		return false
	}
	return s.Width() >= titleMinWidth && s.FontSize >= titleMinFontSize
}
