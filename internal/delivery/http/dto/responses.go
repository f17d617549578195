package dto

import (
	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/quiz"
)

type QuestionsResponse struct {
	Questions []quiz.Question `json:"questions"`
	Fallback  bool            `json:"fallback"`
}

type PersonaSummary struct {
	ID          persona.ID `json:"id"`
	Name        string     `json:"name"`
	Tagline     string     `json:"tagline"`
	Description string     `json:"description"`
	Traits      []string   `json:"traits"`
}

func NewPersonaSummaries(ps []persona.Persona) []PersonaSummary {
	out := make([]PersonaSummary, 0, len(ps))
	for _, p := range ps {
		out = append(out, PersonaSummary{ID: p.ID, Name: p.Name, Tagline: p.Tagline, Description: p.Description, Traits: p.Traits})
	}
	return out
}

type HealthResponse struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components"`
}
