package persona

import "strings"

type ID string

const (
	Architect   ID = "architect"
	Rebel       ID = "rebel"
	Connoisseur ID = "connoisseur"
	Modernist   ID = "modernist"
	Strategist  ID = "strategist"
	Innovator   ID = "innovator"
	Classic     ID = "classic"
	Wanderer    ID = "wanderer"

	DefaultID = Classic
)

// Order is the fixed persona ordering. Equal scores resolve to the persona
// that appears first here.
var Order = []ID{Architect, Rebel, Connoisseur, Modernist, Strategist, Innovator, Classic, Wanderer}

type Gender string

const (
	GenderFemale    Gender = "female"
	GenderMale      Gender = "male"
	GenderNonBinary Gender = "non-binary"
)

func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "man", "men", "menswear":
		return GenderMale
	case "non-binary", "nonbinary", "non binary", "other":
		return GenderNonBinary
	default:
		return GenderFemale
	}
}

type Persona struct {
	ID          ID                  `json:"id"`
	Name        string              `json:"name"`
	Tagline     string              `json:"tagline"`
	Description string              `json:"description"`
	Mission     string              `json:"mission"`
	Traits      []string            `json:"traits"`
	Celebrities map[Gender][]string `json:"celebrities"`
}

func (p Persona) CelebritiesFor(g Gender) []string {
	if list := p.Celebrities[g]; len(list) > 0 {
		return append([]string(nil), list...)
	}
	if list := p.Celebrities[GenderFemale]; len(list) > 0 {
		return append([]string(nil), list...)
	}
	for _, id := range []Gender{GenderMale, GenderNonBinary} {
		if list := p.Celebrities[id]; len(list) > 0 {
			return append([]string(nil), list...)
		}
	}
	return []string{}
}

var catalog = map[ID]Persona{
	Architect: {
		ID:          Architect,
		Name:        "The Architect",
		Tagline:     "Structure is the statement.",
		Description: "You build outfits the way a designer builds a space: clean lines, deliberate proportions and nothing left to chance.",
		Mission:     "Create a precise capsule where every piece earns its place.",
		Traits:      []string{"precise", "intentional", "understated", "detail-oriented"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Victoria Beckham", "Zoë Kravitz", "Phoebe Philo"},
			GenderMale:   {"Tom Ford", "Rami Malek", "Jony Ive"},
		},
	},
	Rebel: {
		ID:          Rebel,
		Name:        "The Rebel",
		Tagline:     "Rules are a starting point.",
		Description: "You dress to disrupt. Statement pieces, unexpected pairings and an attitude that turns heads.",
		Mission:     "Push every look one step further than expected.",
		Traits:      []string{"fearless", "expressive", "edgy", "spontaneous"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Rihanna", "Billie Eilish", "Doja Cat"},
			GenderMale:   {"A$AP Rocky", "Harry Styles", "Bad Bunny"},
		},
	},
	Connoisseur: {
		ID:          Connoisseur,
		Name:        "The Connoisseur",
		Tagline:     "Quality speaks quietly.",
		Description: "You value craftsmanship, heritage fabrics and the kind of elegance that never needs a logo.",
		Mission:     "Invest in pieces that will still feel right in twenty years.",
		Traits:      []string{"refined", "discerning", "elegant", "patient"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Sofia Richie Grainge", "Grace Kelly", "Carolyn Bessette-Kennedy"},
			GenderMale:   {"David Beckham", "George Clooney", "Cary Grant"},
		},
	},
	Modernist: {
		ID:          Modernist,
		Name:        "The Modernist",
		Tagline:     "Comfort, upgraded.",
		Description: "You blend function and polish, reaching for technical fabrics and easy silhouettes that work from morning to night.",
		Mission:     "Make every outfit effortless without looking careless.",
		Traits:      []string{"practical", "current", "relaxed", "efficient"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Hailey Bieber", "Kendall Jenner", "Gigi Hadid"},
			GenderMale:   {"Jacob Elordi", "Paul Mescal", "Jonah Hill"},
		},
	},
	Strategist: {
		ID:          Strategist,
		Name:        "The Strategist",
		Tagline:     "Dressed for the next move.",
		Description: "Your wardrobe is a toolkit. Versatile tailoring and smart separates keep you ready for any room.",
		Mission:     "Build a wardrobe that adapts as fast as your calendar.",
		Traits:      []string{"polished", "versatile", "confident", "organized"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Amal Clooney", "Meghan Markle", "Cate Blanchett"},
			GenderMale:   {"Idris Elba", "Ryan Gosling", "Barack Obama"},
		},
	},
	Innovator: {
		ID:          Innovator,
		Name:        "The Innovator",
		Tagline:     "Tomorrow's look, today.",
		Description: "You experiment early, mixing runway ideas with your own twist before anyone else catches on.",
		Mission:     "Keep your style evolving and your references surprising.",
		Traits:      []string{"experimental", "curious", "trend-forward", "playful"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Zendaya", "Bella Hadid", "Björk"},
			GenderMale:   {"Timothée Chalamet", "Pharrell Williams", "Tyler, the Creator"},
		},
	},
	Classic: {
		ID:          Classic,
		Name:        "The Classic",
		Tagline:     "Timeless by choice.",
		Description: "You trust silhouettes that have proven themselves: crisp shirts, good trousers, a tailored coat.",
		Mission:     "Perfect the essentials and wear them with ease.",
		Traits:      []string{"timeless", "reliable", "polished", "graceful"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Kate Middleton", "Audrey Hepburn", "Blake Lively"},
			GenderMale:   {"Prince William", "Paul Newman", "Chris Pine"},
		},
	},
	Wanderer: {
		ID:          Wanderer,
		Name:        "The Wanderer",
		Tagline:     "Style without borders.",
		Description: "You collect pieces like souvenirs: textures, prints and stories from everywhere you go.",
		Mission:     "Dress for adventure while staying true to your roots.",
		Traits:      []string{"free-spirited", "eclectic", "relaxed", "worldly"},
		Celebrities: map[Gender][]string{
			GenderFemale: {"Sienna Miller", "Vanessa Hudgens", "Florence Welch"},
			GenderMale:   {"Jason Momoa", "Lenny Kravitz", "Chris Hemsworth"},
		},
	},
}

func Lookup(id ID) (Persona, bool) {
	p, ok := catalog[ID(strings.ToLower(strings.TrimSpace(string(id))))]
	return p, ok
}

func Default() Persona {
	return catalog[DefaultID]
}

// All returns the catalog in Order.
func All() []Persona {
	out := make([]Persona, 0, len(Order))
	for _, id := range Order {
		out = append(out, catalog[id])
	}
	return out
}
