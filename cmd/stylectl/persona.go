package main

import (
	"encoding/json"
	"errors"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"

	"github.com/spf13/cobra"
)

// answersFile accepts either a bare answer list or an object carrying
// answers and preferences.
type answersFile struct {
	Answers     []quiz.Answer `json:"answers"`
	Preferences []string      `json:"preferences"`
}

func (f *answersFile) UnmarshalJSON(raw []byte) error {
	var list []quiz.Answer
	if err := json.Unmarshal(raw, &list); err == nil {
		f.Answers = list
		return nil
	}
	type plain answersFile
	var p plain
	if err := json.Unmarshal(raw, &p); err != nil {
		return err
	}
	*f = answersFile(p)
	return nil
}

type personaOutput struct {
	Persona         persona.Persona     `json:"persona"`
	Ranking         []persona.Ranked    `json:"ranking"`
	Personality     persona.Personality `json:"personality"`
	ColorPalette    quiz.ColorAnalysis  `json:"colorPalette"`
	HybridStyleName string              `json:"hybridStyleName"`
	ScoringVersion  string              `json:"scoringVersion"`
}

func newPersonaCmd() *cobra.Command {
	var (
		answersPath string
		prefs       string
	)

	cmd := &cobra.Command{
		Use:   "persona",
		Short: "Score a quiz answer file and print the resulting persona",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var f answersFile
			if err := readJSONFile(answersPath, &f); err != nil {
				return err
			}
			if len(f.Answers) == 0 {
				return errors.New("answers file has no answers")
			}
			f.Preferences = append(f.Preferences, splitList(prefs)...)

			in := profile.QuizInput{Answers: quiz.NewAnswerSet(f.Answers...), Preferences: f.Preferences}
			d := profile.Derive(in)

			best, ok := persona.Lookup(d.Persona.Persona)
			if !ok {
				best = persona.Default()
			}
			return writeJSON(cmd.OutOrStdout(), personaOutput{
				Persona:         best,
				Ranking:         d.Persona.Ranking,
				Personality:     d.Personality,
				ColorPalette:    d.Colors,
				HybridStyleName: d.HybridName,
				ScoringVersion:  d.Persona.Version,
			})
		},
	}

	cmd.Flags().StringVar(&answersPath, "answers", "", "path to a JSON answers file")
	cmd.Flags().StringVar(&prefs, "prefs", "", "comma separated style preferences")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}
