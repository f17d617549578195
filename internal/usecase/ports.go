package usecase

import (
	"context"
	"encoding/json"

	"style-sync/internal/domain/goals"
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"
	"style-sync/internal/infrastructure/backend"
)

type ProfileBackend interface {
	GetProfile(ctx context.Context, token string) (profile.Profile, error)
	PutProfile(ctx context.Context, token string, p profile.Profile) error
}

type QuestionSource interface {
	QuizQuestions(ctx context.Context) ([]quiz.Question, error)
}

type OutfitBackend interface {
	GenerateOutfit(ctx context.Context, token string, in backend.GenerateRequest) (outfit.Outfit, error)
	CreateOutfit(ctx context.Context, token string, o outfit.Outfit) (outfit.Outfit, error)
	WearOutfit(ctx context.Context, token string, in backend.WearRequest) (json.RawMessage, error)
	RateOutfit(ctx context.Context, token string, r outfit.Rating) error
}

type WardrobeBackend interface {
	ListWardrobe(ctx context.Context, token string) ([]outfit.Item, error)
	WardrobeGaps(ctx context.Context, token string) (json.RawMessage, error)
	FeedbackSummary(ctx context.Context, token string) (goals.FeedbackSummary, error)
}

type StatsSource interface {
	DebugStats(ctx context.Context) (map[string]any, error)
}

type Recorder interface {
	Fallback(component string)
	RatingFlushed(err error)
}

type Notifier interface {
	Notify(userID, eventType string, payload any)
}

const (
	EventFeedbackSubmitted = "feedback_submitted"
	EventProfileUpdated    = "profile_updated"
)

type nopRecorder struct{}

func (nopRecorder) Fallback(string)     {}
func (nopRecorder) RatingFlushed(error) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string, any) {}
