package outline

import "sort"

// FontProfile holds the per-document font-size statistics the heading
// classifier buckets against.
type FontProfile struct {
	BodySize float64
	H1Size   float64
	H2Size   float64
	H3Size   float64
}

// Fonts derives a FontProfile from the full span list. BodySize is the modal
// span font size; on a frequency tie the smallest tied size wins, so the
// result never depends on map iteration order. The H sizes are the three
// largest distinct sizes, each strictly below the previous tier, with
// BodySize+4/+2/+1 fallbacks when a tier is absent.
func Fonts(spans []Span) FontProfile {
	freq := make(map[float64]int, 8)
	for _, s := range spans {
		freq[s.FontSize]++
	}

	sizes := make([]float64, 0, len(freq))
	for sz := range freq {
		sizes = append(sizes, sz)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	var body float64
	best := 0
	for i := len(sizes) - 1; i >= 0; i-- { // ascending, so smaller sizes win ties
		if freq[sizes[i]] > best {
			best = freq[sizes[i]]
			body = sizes[i]
		}
	}

	p := FontProfile{BodySize: body, H1Size: body + 4}
	if len(sizes) > 0 {
		p.H1Size = sizes[0]
	}
	p.H2Size = nextBelow(sizes, p.H1Size, body+2)
	p.H3Size = nextBelow(sizes, p.H2Size, body+1)
	return p
}

// nextBelow returns the first size in desc strictly below limit, or fallback.
func nextBelow(desc []float64, limit, fallback float64) float64 {
	for _, sz := range desc {
		if sz < limit {
			return sz
		}
	}
	return fallback
}
