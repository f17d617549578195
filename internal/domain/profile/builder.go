package profile

import (
	"strings"
	"time"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/quiz"
)

type QuizInput struct {
	Answers      *quiz.AnswerSet
	Preferences  []string
	Measurements Measurements
	Sizes        Sizes
}

type Derived struct {
	Persona     persona.Result
	Personality persona.Personality
	Colors      quiz.ColorAnalysis
	HybridName  string
}

// Derive runs every quiz heuristic over the input.
func Derive(in QuizInput) Derived {
	answers := in.Answers.Map()
	personality := persona.ScorePersonality(answers, in.Preferences)
	return Derived{
		Persona:     persona.Score(answers, in.Preferences),
		Personality: personality,
		Colors:      quiz.AnalyzeColors(answers),
		HybridName:  persona.HybridStyleName(personality, in.Preferences),
	}
}

// FromQuiz reshapes a quiz submission into the profile document the backend
// stores. The whole document is replaced on every submission.
func FromQuiz(id Identity, in QuizInput, d Derived, now time.Time) Profile {
	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = PlaceholderName
	}
	email := strings.TrimSpace(id.Email)
	if email == "" {
		email = PlaceholderEmail
	}

	gender, _ := in.Answers.Get(quiz.QuestionGender)
	prefs := make([]string, 0, len(in.Preferences))
	for _, p := range in.Preferences {
		if p = strings.TrimSpace(p); p != "" {
			prefs = append(prefs, p)
		}
	}

	personaID := d.Persona.Persona
	completed := now.UTC()

	return Profile{
		ID:               id.UserID,
		Name:             name,
		Email:            email,
		Gender:           gender,
		Measurements:     in.Measurements,
		Sizes:            in.Sizes,
		StylePreferences: prefs,
		ColorPreferences: d.Colors.Colors,
		StylePersonality: d.Personality.Clamp(),
		ColorPalette:     d.Colors.Palette,
		StylePersona:     &personaID,
		HybridStyleName:  d.HybridName,
		QuizAnswers:      in.Answers.Answers(),
		QuizCompletedAt:  &completed,
		ScoringVersion:   d.Persona.Version,
		UpdatedAt:        completed,
	}
}
