package profile

import (
	"testing"
	"time"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromQuiz_PlaceholdersWhenIdentityIsEmpty(t *testing.T) {
	in := QuizInput{Answers: quiz.NewAnswerSet(quiz.Answer{QuestionID: quiz.QuestionGender, SelectedOption: "Male"})}
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	p := FromQuiz(Identity{UserID: "u1"}, in, Derive(in), now)

	assert.Equal(t, "u1", p.ID)
	assert.Equal(t, PlaceholderName, p.Name)
	assert.Equal(t, PlaceholderEmail, p.Email)
	assert.Equal(t, "Male", p.Gender)
	require.NotNil(t, p.StylePersona)
	assert.Equal(t, persona.DefaultID, *p.StylePersona)
	assert.NotEmpty(t, p.HybridStyleName)
	assert.Equal(t, persona.ScoringVersion, p.ScoringVersion)
	require.NotNil(t, p.QuizCompletedAt)
	assert.True(t, p.QuizCompletedAt.Equal(now))
	assert.NotNil(t, p.StylePreferences)
}

func TestFromQuiz_CarriesDerivedValues(t *testing.T) {
	in := QuizInput{
		Answers: quiz.NewAnswerSet(
			quiz.Answer{QuestionID: quiz.QuestionDailyActivities, SelectedOption: "Office work and meetings"},
			quiz.Answer{QuestionID: quiz.QuestionColorPreferences, SelectedOption: "Jewel tones"},
		),
		Preferences: []string{" Old Money ", ""},
		Sizes:       Sizes{Top: "M"},
	}
	d := Derive(in)

	p := FromQuiz(Identity{UserID: "u2", Name: "Ada", Email: "ada@example.org"}, in, d, time.Now())

	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, []string{"Old Money"}, p.StylePreferences)
	assert.Equal(t, d.Colors.Palette, p.ColorPalette)
	assert.Equal(t, "M", p.Sizes.Top)
	assert.Len(t, p.QuizAnswers, 2)
	assert.Equal(t, "Office work and meetings", p.AnswerMap()[quiz.QuestionDailyActivities])
}
