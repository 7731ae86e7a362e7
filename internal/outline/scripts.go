package outline

// ScriptRange is a closed rune interval accepted as a standalone
// single-character word during title extraction. The ranges are data, not
// logic: new scripts come in through configuration.
type ScriptRange struct {
	Name string `yaml:"name" json:"name"`
	Lo   rune   `yaml:"lo" json:"lo"`
	Hi   rune   `yaml:"hi" json:"hi"`
}

// DefaultScripts lists the ranges accepted out of the box. Generic word
// characters (letters, digits, underscore) are always accepted and do not
// need a range here.
func DefaultScripts() []ScriptRange {
	return []ScriptRange{
		{Name: "arabic", Lo: 0x0600, Hi: 0x06FF},
		{Name: "devanagari", Lo: 0x0900, Hi: 0x097F},
		{Name: "cjk", Lo: 0x4E00, Hi: 0x9FFF},
		{Name: "cyrillic", Lo: 0x0400, Hi: 0x04FF},
		{Name: "hangul", Lo: 0xAC00, Hi: 0xD7AF},
	}
}

func inScripts(r rune, ranges []ScriptRange) bool {
	for _, sc := range ranges {
		if r >= sc.Lo && r <= sc.Hi {
			return true
		}
	}
	return false
}

// defaultStopPhrases lists substrings that mark boilerplate rather than
// section headings: page furniture in English, Spanish and Chinese.
func defaultStopPhrases() []string {
	return []string{
		"page", "continued", "footer", "header", "copyright", "©",
		"página", "continuación", "pie de página", "encabezado",
		"页", "页脚", "页眉", "版权",
	}
}
