package persona

import (
	"sort"
	"strings"
)

var dimensionAdjective = map[Dimension]string{
	DimClassic:  "Classic",
	DimModern:   "Modern",
	DimCreative: "Creative",
	DimMinimal:  "Minimal",
	DimBold:     "Bold",
}

var dimensionNoun = map[Dimension]string{
	DimClassic:  "Classicist",
	DimModern:   "Modernist",
	DimCreative: "Visionary",
	DimMinimal:  "Minimalist",
	DimBold:     "Maverick",
}

// HybridStyleName never returns an empty string.
func HybridStyleName(p Personality, preferences []string) string {
	prefs := distinctPreferences(preferences)
	top := rankDimensions(p)

	switch {
	case len(prefs) >= 2:
		return prefs[0] + " " + prefs[1]
	case len(prefs) == 1:
		return prefs[0] + " " + dimensionNoun[top[0]]
	default:
		return dimensionAdjective[top[0]] + " " + dimensionNoun[top[1]]
	}
}

func rankDimensions(p Personality) []Dimension {
	dims := append([]Dimension(nil), Dimensions...)
	sort.SliceStable(dims, func(i, j int) bool { return p.Get(dims[i]) > p.Get(dims[j]) })
	return dims
}

func distinctPreferences(preferences []string) []string {
	seen := make(map[string]bool, len(preferences))
	out := make([]string, 0, len(preferences))
	for _, p := range preferences {
		p = strings.Join(strings.Fields(p), " ")
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
