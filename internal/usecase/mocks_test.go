package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"style-sync/internal/domain/goals"
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"
	"style-sync/internal/infrastructure/backend"
)

type mockBackend struct {
	mu sync.Mutex

	profile    profile.Profile
	profileErr error
	putErr     error
	put        []profile.Profile
	getCalls   int

	questions    []quiz.Question
	questionsErr error

	generated   outfit.Outfit
	generateErr error
	created     []outfit.Outfit
	createErr   error
	wearErr     error

	rated   []outfit.Rating
	rateErr error

	wardrobe    []outfit.Item
	wardrobeErr error
	gaps        json.RawMessage
	gapsErr     error
	feedback    goals.FeedbackSummary
	feedbackErr error

	stats    map[string]any
	statsErr error
}

func (m *mockBackend) GetProfile(context.Context, string) (profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	return m.profile, m.profileErr
}

func (m *mockBackend) PutProfile(_ context.Context, _ string, p profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put = append(m.put, p)
	return m.putErr
}

func (m *mockBackend) QuizQuestions(context.Context) ([]quiz.Question, error) {
	return m.questions, m.questionsErr
}

func (m *mockBackend) GenerateOutfit(context.Context, string, backend.GenerateRequest) (outfit.Outfit, error) {
	return m.generated, m.generateErr
}

func (m *mockBackend) CreateOutfit(_ context.Context, _ string, o outfit.Outfit) (outfit.Outfit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, o)
	if m.createErr != nil {
		return outfit.Outfit{}, m.createErr
	}
	if o.ID == "" {
		o.ID = "created-1"
	}
	return o, nil
}

func (m *mockBackend) WearOutfit(context.Context, string, backend.WearRequest) (json.RawMessage, error) {
	if m.wearErr != nil {
		return nil, m.wearErr
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func (m *mockBackend) RateOutfit(_ context.Context, _ string, r outfit.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rated = append(m.rated, r)
	return m.rateErr
}

func (m *mockBackend) ratings() []outfit.Rating {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]outfit.Rating(nil), m.rated...)
}

func (m *mockBackend) ListWardrobe(context.Context, string) ([]outfit.Item, error) {
	return m.wardrobe, m.wardrobeErr
}

func (m *mockBackend) WardrobeGaps(context.Context, string) (json.RawMessage, error) {
	return m.gaps, m.gapsErr
}

func (m *mockBackend) FeedbackSummary(context.Context, string) (goals.FeedbackSummary, error) {
	return m.feedback, m.feedbackErr
}

func (m *mockBackend) DebugStats(context.Context) (map[string]any, error) {
	return m.stats, m.statsErr
}

type memRepo struct {
	mu   sync.Mutex
	docs map[string]profile.Profile
	err  error
}

func newMemRepo() *memRepo { return &memRepo{docs: map[string]profile.Profile{}} }

func (r *memRepo) Save(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.docs[p.ID] = p
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.docs[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(userID, eventType string, _ any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, userID+":"+eventType)
}

func (n *recordingNotifier) list() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.events...)
}

var (
	errUnavailable = &backend.StatusError{Endpoint: "/x", StatusCode: 503}
	errForbidden   = &backend.StatusError{Endpoint: "/x", StatusCode: 401}
	errUnprocess   = &backend.StatusError{Endpoint: "/x", StatusCode: 422}
)
