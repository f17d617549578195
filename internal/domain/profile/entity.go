package profile

import (
	"time"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/quiz"
)

const (
	PlaceholderName  = "Style Enthusiast"
	PlaceholderEmail = "user@example.com"
)

// Identity is the caller as decoded from the identity provider token.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	Token     string
	Anonymous bool
}

type Measurements struct {
	Height *float64 `json:"height,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Bust   *float64 `json:"bust,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hips   *float64 `json:"hips,omitempty"`
}

type Sizes struct {
	Top    string `json:"top,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Shoe   string `json:"shoe,omitempty"`
	Dress  string `json:"dress,omitempty"`
}

type Profile struct {
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Gender           string              `json:"gender,omitempty"`
	Measurements     Measurements        `json:"measurements"`
	Sizes            Sizes               `json:"sizes"`
	StylePreferences []string            `json:"stylePreferences"`
	ColorPreferences []string            `json:"colorPreferences"`
	StylePersonality persona.Personality `json:"stylePersonality"`
	ColorPalette     quiz.ColorPalette   `json:"colorPalette"`
	StylePersona     *persona.ID         `json:"stylePersona,omitempty"`
	HybridStyleName  string              `json:"hybridStyleName,omitempty"`
	QuizAnswers      []quiz.Answer       `json:"quizAnswers,omitempty"`
	QuizCompletedAt  *time.Time          `json:"quizCompletedAt,omitempty"`
	ScoringVersion   string              `json:"scoringVersion,omitempty"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

func (p Profile) AnswerMap() map[string]string {
	return quiz.NewAnswerSet(p.QuizAnswers...).Map()
}
