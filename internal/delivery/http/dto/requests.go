package dto

import (
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"
	"style-sync/internal/domain/weather"
)

type QuizSubmitRequest struct {
	Answers      []quiz.Answer        `json:"answers"`
	Preferences  []string             `json:"preferences"`
	Measurements profile.Measurements `json:"measurements"`
	Sizes        profile.Sizes        `json:"sizes"`
}

type GenerateOutfitRequest struct {
	Occasion string            `json:"occasion"`
	Style    string            `json:"style"`
	Mood     string            `json:"mood"`
	Notes    string            `json:"notes"`
	AutoSave bool              `json:"autoSave"`
	Weather  *weather.Snapshot `json:"weather"`
}

type WearOutfitRequest struct {
	OutfitID string `json:"outfitId"`
	WornAt   string `json:"wornAt"`
}

type RatingRequest struct {
	Rating   *int   `json:"rating"`
	Liked    *bool  `json:"liked"`
	Feedback string `json:"feedback"`
}

func (r RatingRequest) ToRating(outfitID string) outfit.Rating {
	return outfit.Rating{OutfitID: outfitID, Rating: r.Rating, Liked: r.Liked, Feedback: r.Feedback}
}

type LocationRequest struct {
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
	Label string   `json:"label"`
}
