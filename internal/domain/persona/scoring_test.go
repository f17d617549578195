package persona

import (
	"testing"

	"style-sync/internal/domain/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_ExampleOfficeClassicOldMoney(t *testing.T) {
	answers := map[string]string{
		quiz.QuestionGender:          "Female",
		quiz.QuestionDailyActivities: "Office work and meetings",
		quiz.QuestionStyleElements:   "Classic and timeless pieces",
	}

	res := Score(answers, []string{"Old Money"})

	assert.Contains(t, []ID{Classic, Connoisseur}, res.Persona)
	assert.NotEqual(t, Rebel, res.Persona)
	assert.Equal(t, ScoringVersion, res.Version)
}

func TestScore_OldMoneyBeatsRebel(t *testing.T) {
	res := Score(nil, []string{"Old Money"})

	rebel := res.ScoreOf(Rebel)
	assert.Greater(t, res.ScoreOf(Connoisseur), rebel)
	assert.Greater(t, res.ScoreOf(Classic), rebel)
	assert.Equal(t, Connoisseur, res.Persona)
}

func TestScore_Deterministic(t *testing.T) {
	answers := map[string]string{
		quiz.QuestionDailyActivities:  "Social events and nightlife",
		quiz.QuestionColorPreferences: "Monochrome black and white",
		quiz.QuestionStyleInspiration: "Street style",
	}
	prefs := []string{"Minimalist", "Edgy"}

	first := Score(answers, prefs)
	for i := 0; i < 50; i++ {
		require.Equal(t, first, Score(answers, prefs))
	}
}

func TestScore_TieBreaksByFixedOrder(t *testing.T) {
	// Social events gives rebel and connoisseur two points each; rebel is
	// defined first.
	res := Score(map[string]string{quiz.QuestionDailyActivities: "Social events and nightlife"}, nil)
	require.Equal(t, res.ScoreOf(Rebel), res.ScoreOf(Connoisseur))
	assert.Equal(t, Rebel, res.Persona)
	assert.Equal(t, Rebel, res.Ranking[0].ID)
	assert.Equal(t, Connoisseur, res.Ranking[1].ID)
}

func TestScore_AllZeroReturnsDefault(t *testing.T) {
	res := Score(map[string]string{quiz.QuestionGender: "Female"}, []string{"Unknown label"})
	assert.Equal(t, DefaultID, res.Persona)
	assert.Len(t, res.Ranking, len(Order))
	for _, r := range res.Ranking {
		assert.Zero(t, r.Score)
	}
}

func TestScore_CaseInsensitive(t *testing.T) {
	a := Score(map[string]string{quiz.QuestionStyleElements: "  bold STATEMENT pieces "}, []string{"streetwear"})
	assert.Equal(t, Rebel, a.Persona)
	assert.Equal(t, 6, a.ScoreOf(Rebel))
}

func TestScorePersonality_AlwaysClamped(t *testing.T) {
	answers := map[string]string{
		quiz.QuestionDailyActivities:  "Social events and nightlife",
		quiz.QuestionStyleElements:    "Bold statement pieces",
		quiz.QuestionColorPreferences: "Bold and bright colors",
		quiz.QuestionStyleInspiration: "Street style",
	}
	prefs := []string{"Edgy", "Avant-garde", "Y2K", "Streetwear"}

	p := ScorePersonality(answers, prefs)
	for _, d := range Dimensions {
		v := p.Get(d)
		assert.GreaterOrEqual(t, v, 0.0, "dimension %s", d)
		assert.LessOrEqual(t, v, 1.0, "dimension %s", d)
	}
	assert.Equal(t, 1.0, p.Bold)
}

func TestScorePersonality_BaselineIsHalf(t *testing.T) {
	p := ScorePersonality(nil, nil)
	assert.Equal(t, Personality{Classic: 0.5, Modern: 0.5, Creative: 0.5, Minimal: 0.5, Bold: 0.5}, p)
}

func TestClamp(t *testing.T) {
	p := Personality{Classic: -0.4, Modern: 1.7, Creative: 0.333333, Minimal: 0.5, Bold: 1}.Clamp()
	assert.Equal(t, 0.0, p.Classic)
	assert.Equal(t, 1.0, p.Modern)
	assert.Equal(t, 0.33, p.Creative)
}

func TestHybridStyleName(t *testing.T) {
	base := ScorePersonality(nil, nil)

	assert.Equal(t, "Old Money Minimalist", HybridStyleName(base, []string{"Old Money", "Minimalist", "Edgy"}))
	assert.Equal(t, "Old Money Classicist", HybridStyleName(base, []string{"Old Money", " old money "}))
	assert.Equal(t, "Classic Modernist", HybridStyleName(base, nil))

	bold := Personality{Classic: 0.2, Modern: 0.4, Creative: 0.6, Minimal: 0.1, Bold: 0.9}
	assert.Equal(t, "Bold Visionary", HybridStyleName(bold, []string{"", "  "}))
}

func TestCatalog(t *testing.T) {
	all := All()
	require.Len(t, all, len(Order))
	for i, p := range all {
		assert.Equal(t, Order[i], p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Traits)
		assert.NotEmpty(t, p.CelebritiesFor(GenderNonBinary))
	}

	p, ok := Lookup(" Rebel ")
	require.True(t, ok)
	assert.Equal(t, Rebel, p.ID)

	_, ok = Lookup("unknown")
	assert.False(t, ok)

	assert.Equal(t, DefaultID, Default().ID)
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderMale, ParseGender("Male"))
	assert.Equal(t, GenderNonBinary, ParseGender("Non-binary"))
	assert.Equal(t, GenderFemale, ParseGender(""))
}
