package quiz

import "strings"

type ColorPalette struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Accent    []string `json:"accent"`
	Neutral   []string `json:"neutral"`
	Avoid     []string `json:"avoid"`
}

type ColorAnalysis struct {
	Preference string       `json:"preference"`
	Palette    ColorPalette `json:"palette"`
	Colors     []string     `json:"colors"`
}

var palettes = map[string]ColorPalette{
	"neutrals and earth tones": {
		Primary:   []string{"camel", "beige", "olive"},
		Secondary: []string{"rust", "chocolate", "sand"},
		Accent:    []string{"terracotta", "mustard"},
		Neutral:   []string{"ivory", "taupe", "cream"},
		Avoid:     []string{"neon green", "electric blue"},
	},
	"bold and bright colors": {
		Primary:   []string{"red", "cobalt", "emerald"},
		Secondary: []string{"fuchsia", "orange", "yellow"},
		Accent:    []string{"turquoise", "violet"},
		Neutral:   []string{"white", "black"},
		Avoid:     []string{"muddy brown", "dusty beige"},
	},
	"monochrome black and white": {
		Primary:   []string{"black", "white"},
		Secondary: []string{"charcoal", "grey"},
		Accent:    []string{"red", "silver"},
		Neutral:   []string{"off-white", "graphite"},
		Avoid:     []string{"pastel yellow", "orange"},
	},
	"pastels and soft tones": {
		Primary:   []string{"blush", "powder blue", "lavender"},
		Secondary: []string{"mint", "peach", "butter yellow"},
		Accent:    []string{"rose gold", "lilac"},
		Neutral:   []string{"cream", "light grey"},
		Avoid:     []string{"neon", "black"},
	},
	"jewel tones": {
		Primary:   []string{"sapphire", "emerald", "ruby"},
		Secondary: []string{"amethyst", "teal", "burgundy"},
		Accent:    []string{"gold", "topaz"},
		Neutral:   []string{"black", "navy"},
		Avoid:     []string{"pastel pink", "beige"},
	},
}

var defaultPalette = ColorPalette{
	Primary:   []string{"navy", "white"},
	Secondary: []string{"grey", "denim blue"},
	Accent:    []string{"burgundy"},
	Neutral:   []string{"black", "beige"},
	Avoid:     []string{},
}

func clonePalette(p ColorPalette) ColorPalette {
	return ColorPalette{
		Primary:   append([]string{}, p.Primary...),
		Secondary: append([]string{}, p.Secondary...),
		Accent:    append([]string{}, p.Accent...),
		Neutral:   append([]string{}, p.Neutral...),
		Avoid:     append([]string{}, p.Avoid...),
	}
}

func AnalyzeColors(answers map[string]string) ColorAnalysis {
	pref := strings.TrimSpace(answers[QuestionColorPreferences])
	p, ok := palettes[strings.ToLower(pref)]
	if !ok {
		p = defaultPalette
	}
	p = clonePalette(p)

	colors := make([]string, 0, len(p.Primary)+len(p.Secondary)+len(p.Accent))
	colors = append(colors, p.Primary...)
	colors = append(colors, p.Secondary...)
	colors = append(colors, p.Accent...)

	return ColorAnalysis{Preference: pref, Palette: p, Colors: colors}
}
