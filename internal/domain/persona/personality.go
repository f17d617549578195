package persona

import (
	"math"
	"strings"

	"style-sync/internal/domain/quiz"
)

type Dimension string

const (
	DimClassic  Dimension = "classic"
	DimModern   Dimension = "modern"
	DimCreative Dimension = "creative"
	DimMinimal  Dimension = "minimal"
	DimBold     Dimension = "bold"
)

var Dimensions = []Dimension{DimClassic, DimModern, DimCreative, DimMinimal, DimBold}

const personalityBase = 0.5

type Personality struct {
	Classic  float64 `json:"classic"`
	Modern   float64 `json:"modern"`
	Creative float64 `json:"creative"`
	Minimal  float64 `json:"minimal"`
	Bold     float64 `json:"bold"`
}

func (p Personality) Get(d Dimension) float64 {
	switch d {
	case DimClassic:
		return p.Classic
	case DimModern:
		return p.Modern
	case DimCreative:
		return p.Creative
	case DimMinimal:
		return p.Minimal
	case DimBold:
		return p.Bold
	default:
		return 0
	}
}

func (p *Personality) add(d Dimension, delta float64) {
	switch d {
	case DimClassic:
		p.Classic += delta
	case DimModern:
		p.Modern += delta
	case DimCreative:
		p.Creative += delta
	case DimMinimal:
		p.Minimal += delta
	case DimBold:
		p.Bold += delta
	}
}

// Clamp bounds every dimension to [0,1] and rounds to two decimals.
func (p Personality) Clamp() Personality {
	return Personality{
		Classic:  clampUnit(p.Classic),
		Modern:   clampUnit(p.Modern),
		Creative: clampUnit(p.Creative),
		Minimal:  clampUnit(p.Minimal),
		Bold:     clampUnit(p.Bold),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return math.Round(v*100) / 100
}

type personalityRule struct {
	question string
	option   string
	deltas   map[Dimension]float64
}

var personalityRules = []personalityRule{
	{quiz.QuestionDailyActivities, "Office work and meetings", map[Dimension]float64{DimClassic: 0.1}},
	{quiz.QuestionDailyActivities, "Creative work and design", map[Dimension]float64{DimCreative: 0.2}},
	{quiz.QuestionDailyActivities, "Active and outdoor", map[Dimension]float64{DimModern: 0.1}},
	{quiz.QuestionDailyActivities, "Social events and nightlife", map[Dimension]float64{DimBold: 0.2}},

	{quiz.QuestionStyleElements, "Classic and timeless pieces", map[Dimension]float64{DimClassic: 0.3, DimBold: -0.1}},
	{quiz.QuestionStyleElements, "Bold statement pieces", map[Dimension]float64{DimBold: 0.3, DimMinimal: -0.2}},
	{quiz.QuestionStyleElements, "Clean minimal lines", map[Dimension]float64{DimMinimal: 0.3, DimBold: -0.1}},
	{quiz.QuestionStyleElements, "Trendy and experimental", map[Dimension]float64{DimCreative: 0.3, DimModern: 0.2, DimClassic: -0.1}},
	{quiz.QuestionStyleElements, "Comfortable and relaxed", map[Dimension]float64{DimModern: 0.1}},
	{quiz.QuestionStyleElements, "Luxury fabrics and tailoring", map[Dimension]float64{DimClassic: 0.2}},

	{quiz.QuestionColorPreferences, "Neutrals and earth tones", map[Dimension]float64{DimMinimal: 0.1, DimClassic: 0.1}},
	{quiz.QuestionColorPreferences, "Bold and bright colors", map[Dimension]float64{DimBold: 0.3, DimMinimal: -0.1}},
	{quiz.QuestionColorPreferences, "Monochrome black and white", map[Dimension]float64{DimMinimal: 0.2, DimModern: 0.1}},
	{quiz.QuestionColorPreferences, "Pastels and soft tones", map[Dimension]float64{DimCreative: 0.1}},
	{quiz.QuestionColorPreferences, "Jewel tones", map[Dimension]float64{DimBold: 0.1, DimClassic: 0.1}},

	{quiz.QuestionStyleInspiration, "Street style", map[Dimension]float64{DimBold: 0.2, DimCreative: 0.1}},
	{quiz.QuestionStyleInspiration, "Minimalist Scandinavian", map[Dimension]float64{DimMinimal: 0.3}},
	{quiz.QuestionStyleInspiration, "Runway and designers", map[Dimension]float64{DimCreative: 0.2, DimModern: 0.1}},
	{quiz.QuestionStyleInspiration, "Timeless icons", map[Dimension]float64{DimClassic: 0.2}},

	{preference, "Old Money", map[Dimension]float64{DimClassic: 0.3}},
	{preference, "Minimalist", map[Dimension]float64{DimMinimal: 0.3}},
	{preference, "Streetwear", map[Dimension]float64{DimBold: 0.2, DimModern: 0.2}},
	{preference, "Bohemian", map[Dimension]float64{DimCreative: 0.2}},
	{preference, "Classic", map[Dimension]float64{DimClassic: 0.3}},
	{preference, "Edgy", map[Dimension]float64{DimBold: 0.3, DimClassic: -0.2}},
	{preference, "Avant-garde", map[Dimension]float64{DimCreative: 0.3, DimBold: 0.2}},
	{preference, "Preppy", map[Dimension]float64{DimClassic: 0.2}},
	{preference, "Business Casual", map[Dimension]float64{DimClassic: 0.1, DimModern: 0.1}},
	{preference, "Athleisure", map[Dimension]float64{DimModern: 0.2}},
	{preference, "Scandinavian", map[Dimension]float64{DimMinimal: 0.2, DimModern: 0.1}},
	{preference, "Y2K", map[Dimension]float64{DimCreative: 0.2, DimBold: 0.2}},
	{preference, "Vintage", map[Dimension]float64{DimClassic: 0.2, DimCreative: 0.1}},
	{preference, "Romantic", map[Dimension]float64{DimCreative: 0.1}},
}

// ScorePersonality starts every dimension at 0.5 and clamps only after all
// matching rules have been applied.
func ScorePersonality(answers map[string]string, preferences []string) Personality {
	normAnswers := normalizeAnswers(answers)
	prefs := normalizePreferences(preferences)

	p := Personality{
		Classic:  personalityBase,
		Modern:   personalityBase,
		Creative: personalityBase,
		Minimal:  personalityBase,
		Bold:     personalityBase,
	}
	for _, r := range personalityRules {
		opt := strings.ToLower(r.option)
		if r.question == preference {
			if !prefs[opt] {
				continue
			}
		} else if normAnswers[r.question] != opt {
			continue
		}
		for d, delta := range r.deltas {
			p.add(d, delta)
		}
	}
	return p.Clamp()
}
