package weather

import "strings"

// Occasion, Style and Mood carry only the values the styling backend
// accepts for outfit generation.
type Occasion string

type Style string

type Mood string

const (
	OccasionCasual    Occasion = "Casual"
	OccasionBusiness  Occasion = "Business"
	OccasionFormal    Occasion = "Formal"
	OccasionDateNight Occasion = "Date Night"
	OccasionOutdoor   Occasion = "Outdoor"
	OccasionAthletic  Occasion = "Athletic"
	OccasionLounge    Occasion = "Lounge"
	OccasionTravel    Occasion = "Travel"
	OccasionParty     Occasion = "Party"
)

const (
	StyleCasual     Style = "Casual"
	StyleClassic    Style = "Classic"
	StyleMinimalist Style = "Minimalist"
	StyleStreetwear Style = "Streetwear"
	StyleBohemian   Style = "Bohemian"
	StyleSporty     Style = "Sporty"
	StyleElegant    Style = "Elegant"
	StyleEdgy       Style = "Edgy"
	StylePreppy     Style = "Preppy"
)

const (
	MoodRelaxed      Mood = "Relaxed"
	MoodConfident    Mood = "Confident"
	MoodEnergetic    Mood = "Energetic"
	MoodCozy         Mood = "Cozy"
	MoodPlayful      Mood = "Playful"
	MoodProfessional Mood = "Professional"
	MoodRomantic     Mood = "Romantic"
	MoodCalm         Mood = "Calm"
)

var (
	Occasions = []Occasion{OccasionCasual, OccasionBusiness, OccasionFormal, OccasionDateNight, OccasionOutdoor, OccasionAthletic, OccasionLounge, OccasionTravel, OccasionParty}
	Styles    = []Style{StyleCasual, StyleClassic, StyleMinimalist, StyleStreetwear, StyleBohemian, StyleSporty, StyleElegant, StyleEdgy, StylePreppy}
	Moods     = []Mood{MoodRelaxed, MoodConfident, MoodEnergetic, MoodCozy, MoodPlayful, MoodProfessional, MoodRomantic, MoodCalm}
)

func (o Occasion) Valid() bool { return contains(Occasions, o) }
func (s Style) Valid() bool    { return contains(Styles, s) }
func (m Mood) Valid() bool     { return contains(Moods, m) }

func ParseOccasion(s string) (Occasion, bool) { return parse(Occasions, s) }
func ParseStyle(s string) (Style, bool)       { return parse(Styles, s) }
func ParseMood(s string) (Mood, bool)         { return parse(Moods, s) }

type Params struct {
	Occasion Occasion `json:"occasion"`
	Style    Style    `json:"style"`
	Mood     Mood     `json:"mood"`
}

func (p Params) Valid() bool {
	return p.Occasion.Valid() && p.Style.Valid() && p.Mood.Valid()
}

func contains[T ~string](set []T, v T) bool {
	for _, it := range set {
		if it == v {
			return true
		}
	}
	return false
}

func parse[T ~string](set []T, s string) (T, bool) {
	s = strings.Join(strings.Fields(s), " ")
	for _, it := range set {
		if strings.EqualFold(string(it), s) {
			return it, true
		}
	}
	var zero T
	return zero, false
}
