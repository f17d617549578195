package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"
	"style-sync/internal/infrastructure/backend"

	"go.uber.org/zap"
)

const (
	PersistedToBackend  = "backend"
	PersistedToFallback = "fallback"
	PersistedToNone     = "none"
)

type SubmitInput struct {
	Answers      []quiz.Answer        `json:"answers"`
	Preferences  []string             `json:"preferences"`
	Measurements profile.Measurements `json:"measurements"`
	Sizes        profile.Sizes        `json:"sizes"`
}

type SubmitResult struct {
	Success         bool                `json:"success"`
	PersistedTo     string              `json:"persistedTo"`
	Persona         persona.Persona     `json:"persona"`
	Ranking         []persona.Ranked    `json:"ranking"`
	Personality     persona.Personality `json:"stylePersonality"`
	ColorPalette    quiz.ColorPalette   `json:"colorPalette"`
	HybridStyleName string              `json:"hybridStyleName"`
	Profile         profile.Profile     `json:"profile"`
}

type QuizUsecase interface {
	Submit(ctx context.Context, id profile.Identity, in SubmitInput) (SubmitResult, error)
	Questions(ctx context.Context) ([]quiz.Question, bool)
}

type Quiz struct {
	backend   ProfileBackend
	questions QuestionSource
	fallback  profile.Repository
	recorder  Recorder
	notifier  Notifier
	logger    *zap.Logger
	now       func() time.Time
}

func NewQuizUsecase(be ProfileBackend, qs QuestionSource, fallback profile.Repository, rec Recorder, n Notifier, logger *zap.Logger) *Quiz {
	if rec == nil {
		rec = nopRecorder{}
	}
	if n == nil {
		n = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Quiz{backend: be, questions: qs, fallback: fallback, recorder: rec, notifier: n, logger: logger, now: time.Now}
}

// Submit scores the answers and stores the resulting profile. Only a backend
// rejection fails the submission; when the backend or the fallback store is
// down the caller still gets its persona.
func (u *Quiz) Submit(ctx context.Context, id profile.Identity, in SubmitInput) (SubmitResult, error) {
	answers := quiz.NewAnswerSet(in.Answers...)
	if answers.Len() == 0 {
		return SubmitResult{}, fmt.Errorf("%w: at least one answer is required", ErrInvalidInput)
	}

	qi := profile.QuizInput{
		Answers:      answers,
		Preferences:  in.Preferences,
		Measurements: in.Measurements,
		Sizes:        in.Sizes,
	}
	d := profile.Derive(qi)
	p := profile.FromQuiz(id, qi, d, u.now())

	persistedTo, err := u.persist(ctx, id, p)
	if err != nil {
		return SubmitResult{}, err
	}

	res := SubmitResult{
		Success:         true,
		PersistedTo:     persistedTo,
		Ranking:         d.Persona.Ranking,
		Personality:     p.StylePersonality,
		ColorPalette:    p.ColorPalette,
		HybridStyleName: p.HybridStyleName,
		Profile:         p,
	}
	res.Persona, _ = persona.Lookup(d.Persona.Persona)

	if p.ID != "" && res.PersistedTo != PersistedToNone {
		u.notifier.Notify(p.ID, EventProfileUpdated, res)
	}
	return res, nil
}

func (u *Quiz) persist(ctx context.Context, id profile.Identity, p profile.Profile) (string, error) {
	if u.backend != nil && strings.TrimSpace(id.Token) != "" {
		err := u.backend.PutProfile(ctx, id.Token, p)
		if err == nil {
			return PersistedToBackend, nil
		}
		if !backend.IsUnavailable(err) {
			return "", classifyBackendError(err)
		}
		u.logger.Warn("profile write to backend failed, trying fallback store",
			zap.String("user_id", p.ID), zap.Error(err))
	}

	u.recorder.Fallback("profile_store")
	if u.fallback == nil || p.ID == "" {
		return PersistedToNone, nil
	}
	if err := u.fallback.Save(ctx, p); err != nil {
		u.logger.Error("fallback profile store failed", zap.String("user_id", p.ID), zap.Error(err))
		return PersistedToNone, nil
	}
	return PersistedToFallback, nil
}

// Questions returns the backend question bank, or the bundled one and true
// when the backend has none to offer.
func (u *Quiz) Questions(ctx context.Context) ([]quiz.Question, bool) {
	if u.questions != nil {
		qs, err := u.questions.QuizQuestions(ctx)
		if err == nil && len(qs) > 0 {
			return qs, false
		}
		if err != nil {
			u.logger.Warn("quiz questions unavailable, serving bundled set", zap.Error(err))
		}
	}
	u.recorder.Fallback("quiz_questions")
	return quiz.DefaultQuestions(), true
}
