package persona

import (
	"sort"
	"strings"

	"style-sync/internal/domain/quiz"
)

const ScoringVersion = "2"

// rule adds weight to one or more personas when the answer to question
// equals option. An empty question matches against style preferences.
type rule struct {
	question string
	option   string
	weights  map[ID]int
}

const preference = ""

var rules = []rule{
	{quiz.QuestionDailyActivities, "Office work and meetings", map[ID]int{Strategist: 3, Classic: 2, Architect: 1}},
	{quiz.QuestionDailyActivities, "Creative work and design", map[ID]int{Innovator: 3, Rebel: 1, Modernist: 1}},
	{quiz.QuestionDailyActivities, "Active and outdoor", map[ID]int{Wanderer: 3, Modernist: 1}},
	{quiz.QuestionDailyActivities, "Social events and nightlife", map[ID]int{Rebel: 2, Connoisseur: 2}},
	{quiz.QuestionDailyActivities, "Work from home", map[ID]int{Modernist: 2, Wanderer: 1}},
	{quiz.QuestionDailyActivities, "Travel frequently", map[ID]int{Wanderer: 3, Connoisseur: 1}},

	{quiz.QuestionStyleElements, "Classic and timeless pieces", map[ID]int{Classic: 3, Connoisseur: 2}},
	{quiz.QuestionStyleElements, "Bold statement pieces", map[ID]int{Rebel: 3, Innovator: 1}},
	{quiz.QuestionStyleElements, "Clean minimal lines", map[ID]int{Architect: 3, Modernist: 2}},
	{quiz.QuestionStyleElements, "Trendy and experimental", map[ID]int{Innovator: 3, Rebel: 2}},
	{quiz.QuestionStyleElements, "Comfortable and relaxed", map[ID]int{Wanderer: 2, Modernist: 1}},
	{quiz.QuestionStyleElements, "Luxury fabrics and tailoring", map[ID]int{Connoisseur: 3, Strategist: 1}},

	{quiz.QuestionColorPreferences, "Neutrals and earth tones", map[ID]int{Classic: 1, Wanderer: 1, Architect: 1}},
	{quiz.QuestionColorPreferences, "Bold and bright colors", map[ID]int{Rebel: 2, Innovator: 1}},
	{quiz.QuestionColorPreferences, "Monochrome black and white", map[ID]int{Architect: 2, Modernist: 2}},
	{quiz.QuestionColorPreferences, "Pastels and soft tones", map[ID]int{Wanderer: 1, Classic: 1}},
	{quiz.QuestionColorPreferences, "Jewel tones", map[ID]int{Connoisseur: 2}},

	{quiz.QuestionFitPreference, "Tailored and structured", map[ID]int{Strategist: 2, Architect: 1, Classic: 1}},
	{quiz.QuestionFitPreference, "Relaxed and oversized", map[ID]int{Wanderer: 2, Rebel: 1}},
	{quiz.QuestionFitPreference, "Fitted and body-conscious", map[ID]int{Modernist: 1, Connoisseur: 1}},
	{quiz.QuestionFitPreference, "Mix of fits", map[ID]int{Innovator: 1}},

	{quiz.QuestionShoppingPriority, "Quality over quantity", map[ID]int{Connoisseur: 2, Classic: 1}},
	{quiz.QuestionShoppingPriority, "Latest trends", map[ID]int{Innovator: 2, Rebel: 1}},
	{quiz.QuestionShoppingPriority, "Versatility", map[ID]int{Strategist: 2, Modernist: 1}},
	{quiz.QuestionShoppingPriority, "Sustainability", map[ID]int{Wanderer: 2, Architect: 1}},
	{quiz.QuestionShoppingPriority, "Value for money", map[ID]int{Modernist: 1, Strategist: 1}},

	{quiz.QuestionStyleInspiration, "Timeless icons", map[ID]int{Classic: 2, Connoisseur: 1}},
	{quiz.QuestionStyleInspiration, "Street style", map[ID]int{Rebel: 3}},
	{quiz.QuestionStyleInspiration, "Runway and designers", map[ID]int{Innovator: 2, Connoisseur: 1}},
	{quiz.QuestionStyleInspiration, "Minimalist Scandinavian", map[ID]int{Architect: 3}},
	{quiz.QuestionStyleInspiration, "Global cultures", map[ID]int{Wanderer: 3}},

	{preference, "Old Money", map[ID]int{Connoisseur: 3, Classic: 2}},
	{preference, "Minimalist", map[ID]int{Architect: 3, Modernist: 1}},
	{preference, "Streetwear", map[ID]int{Rebel: 3}},
	{preference, "Bohemian", map[ID]int{Wanderer: 3}},
	{preference, "Classic", map[ID]int{Classic: 3}},
	{preference, "Edgy", map[ID]int{Rebel: 2, Innovator: 1}},
	{preference, "Preppy", map[ID]int{Classic: 2, Strategist: 1}},
	{preference, "Avant-garde", map[ID]int{Innovator: 3}},
	{preference, "Business Casual", map[ID]int{Strategist: 3}},
	{preference, "Athleisure", map[ID]int{Modernist: 2, Wanderer: 1}},
	{preference, "Vintage", map[ID]int{Connoisseur: 1, Wanderer: 1, Classic: 1}},
	{preference, "Romantic", map[ID]int{Classic: 1, Connoisseur: 1}},
	{preference, "Scandinavian", map[ID]int{Architect: 2, Modernist: 1}},
	{preference, "Y2K", map[ID]int{Innovator: 2, Rebel: 1}},
}

type Ranked struct {
	ID    ID  `json:"id"`
	Score int `json:"score"`
}

type Result struct {
	Persona ID       `json:"persona"`
	Ranking []Ranked `json:"ranking"`
	Version string   `json:"version"`
}

func (r Result) ScoreOf(id ID) int {
	for _, it := range r.Ranking {
		if it.ID == id {
			return it.Score
		}
	}
	return 0
}

// Score ranks every persona for the given answers and preferences.
// Answers and preferences are compared case-insensitively.
func Score(answers map[string]string, preferences []string) Result {
	normAnswers := normalizeAnswers(answers)
	prefs := normalizePreferences(preferences)

	scores := make(map[ID]int, len(Order))
	for _, r := range rules {
		if !r.matches(normAnswers, prefs) {
			continue
		}
		for id, w := range r.weights {
			scores[id] += w
		}
	}

	ranking := make([]Ranked, 0, len(Order))
	for _, id := range Order {
		ranking = append(ranking, Ranked{ID: id, Score: scores[id]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Score > ranking[j].Score })

	winner := DefaultID
	if ranking[0].Score > 0 {
		winner = ranking[0].ID
	}
	return Result{Persona: winner, Ranking: ranking, Version: ScoringVersion}
}

func (r rule) matches(answers map[string]string, prefs map[string]bool) bool {
	opt := strings.ToLower(r.option)
	if r.question == preference {
		return prefs[opt]
	}
	return answers[r.question] == opt
}

func normalizeAnswers(answers map[string]string) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		out[strings.TrimSpace(k)] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func normalizePreferences(preferences []string) map[string]bool {
	out := make(map[string]bool, len(preferences))
	for _, p := range preferences {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out[p] = true
	}
	return out
}
