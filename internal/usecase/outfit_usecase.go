package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/weather"
	"style-sync/internal/infrastructure/backend"
	"style-sync/internal/pkg/debounce"

	"go.uber.org/zap"
)

type GenerateInput struct {
	Occasion string            `json:"occasion"`
	Style    string            `json:"style"`
	Mood     string            `json:"mood"`
	Weather  *weather.Snapshot `json:"weather,omitempty"`
	Notes    string            `json:"notes,omitempty"`
	AutoSave bool              `json:"autoSave"`
}

type GenerateResult struct {
	Outfit   outfit.Outfit `json:"outfit"`
	Fallback bool          `json:"fallback"`
	Saved    bool          `json:"saved"`
}

type RatingAck struct {
	OutfitID string        `json:"outfitId"`
	Pending  outfit.Rating `json:"pending"`
	DelayMS  int64         `json:"delayMs"`
}

type OutfitUsecase interface {
	Generate(ctx context.Context, id profile.Identity, in GenerateInput) (GenerateResult, error)
	Create(ctx context.Context, id profile.Identity, o outfit.Outfit) (outfit.Outfit, error)
	Wear(ctx context.Context, id profile.Identity, in backend.WearRequest) (json.RawMessage, error)
	SubmitRating(ctx context.Context, id profile.Identity, r outfit.Rating) (RatingAck, error)
	Close()
}

type DebounceConfig struct {
	Rating   time.Duration
	Feedback time.Duration
}

type pendingRating struct {
	rating outfit.Rating
	token  string
	userID string
}

type Outfit struct {
	backend  OutfitBackend
	recorder Recorder
	notifier Notifier
	logger   *zap.Logger
	delays   DebounceConfig
	now      func() time.Time

	debouncer *debounce.Debouncer[string]
	mu        sync.Mutex
	pending   map[string]pendingRating
}

func NewOutfitUsecase(be OutfitBackend, delays DebounceConfig, rec Recorder, n Notifier, logger *zap.Logger) *Outfit {
	if rec == nil {
		rec = nopRecorder{}
	}
	if n == nil {
		n = nopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if delays.Rating <= 0 {
		delays.Rating = 300 * time.Millisecond
	}
	if delays.Feedback <= 0 {
		delays.Feedback = time.Second
	}
	return &Outfit{
		backend:   be,
		recorder:  rec,
		notifier:  n,
		logger:    logger,
		delays:    delays,
		now:       time.Now,
		debouncer: debounce.New[string](),
		pending:   make(map[string]pendingRating),
	}
}

func parseParams(in GenerateInput) (weather.Params, error) {
	occ, ok := weather.ParseOccasion(in.Occasion)
	if !ok {
		return weather.Params{}, fmt.Errorf("%w: unknown occasion %q", ErrInvalidInput, in.Occasion)
	}
	style, ok := weather.ParseStyle(in.Style)
	if !ok {
		return weather.Params{}, fmt.Errorf("%w: unknown style %q", ErrInvalidInput, in.Style)
	}
	mood, ok := weather.ParseMood(in.Mood)
	if !ok {
		return weather.Params{}, fmt.Errorf("%w: unknown mood %q", ErrInvalidInput, in.Mood)
	}
	return weather.Params{Occasion: occ, Style: style, Mood: mood}, nil
}

// Generate asks the backend for an outfit. When the backend cannot serve
// the request a zero-item fallback outfit is returned instead of an error.
func (u *Outfit) Generate(ctx context.Context, id profile.Identity, in GenerateInput) (GenerateResult, error) {
	params, err := parseParams(in)
	if err != nil {
		return GenerateResult{}, err
	}

	o, err := u.backend.GenerateOutfit(ctx, id.Token, backend.GenerateRequest{
		Occasion: string(params.Occasion),
		Style:    string(params.Style),
		Mood:     string(params.Mood),
		Weather:  in.Weather,
		Notes:    strings.TrimSpace(in.Notes),
	})
	if err != nil {
		switch cerr := classifyBackendError(err); {
		case errors.Is(cerr, ErrUnauthorized), errors.Is(cerr, ErrInvalidInput):
			return GenerateResult{}, fmt.Errorf("generate outfit: %w", cerr)
		}
		u.logger.Warn("outfit generation failed, serving fallback", zap.Error(err))
		u.recorder.Fallback("outfit_generate")
		return GenerateResult{Outfit: outfit.Fallback(params, in.Weather, u.now()), Fallback: true}, nil
	}

	res := GenerateResult{Outfit: o}
	if in.AutoSave && o.Usable() {
		saved, err := u.backend.CreateOutfit(ctx, id.Token, o)
		if err != nil {
			u.logger.Warn("auto-save of generated outfit failed", zap.String("outfit_id", o.ID), zap.Error(err))
		} else {
			res.Saved = true
			if saved.ID != "" {
				res.Outfit = saved
			}
		}
	}
	return res, nil
}

func (u *Outfit) Create(ctx context.Context, id profile.Identity, o outfit.Outfit) (outfit.Outfit, error) {
	if strings.TrimSpace(o.Name) == "" && len(o.Items) == 0 {
		return outfit.Outfit{}, fmt.Errorf("%w: outfit needs a name or items", ErrInvalidInput)
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = u.now().UTC()
	}
	out, err := u.backend.CreateOutfit(ctx, id.Token, o)
	if err != nil {
		return outfit.Outfit{}, fmt.Errorf("create outfit: %w", classifyBackendError(err))
	}
	return out, nil
}

func (u *Outfit) Wear(ctx context.Context, id profile.Identity, in backend.WearRequest) (json.RawMessage, error) {
	in.OutfitID = strings.TrimSpace(in.OutfitID)
	if in.OutfitID == "" {
		return nil, fmt.Errorf("%w: outfitId is required", ErrInvalidInput)
	}
	if in.WornAt.IsZero() {
		in.WornAt = u.now().UTC()
	}
	out, err := u.backend.WearOutfit(ctx, id.Token, in)
	if err != nil {
		return nil, fmt.Errorf("wear outfit: %w", classifyBackendError(err))
	}
	return out, nil
}

// SubmitRating merges r into the caller's pending rating for the outfit and
// (re)starts its quiet period. Free-text feedback waits longer than star and
// like changes. The merged rating is sent once the period elapses.
func (u *Outfit) SubmitRating(_ context.Context, id profile.Identity, r outfit.Rating) (RatingAck, error) {
	r.OutfitID = strings.TrimSpace(r.OutfitID)
	r.Feedback = strings.TrimSpace(r.Feedback)
	if err := r.Validate(); err != nil {
		return RatingAck{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	userID := strings.TrimSpace(id.UserID)
	if userID == "" {
		return RatingAck{}, ErrUnauthorized
	}

	key := userID + "|" + r.OutfitID
	delay := u.delays.Rating
	if r.Feedback != "" {
		delay = u.delays.Feedback
	}

	u.mu.Lock()
	cur, ok := u.pending[key]
	if !ok {
		cur = pendingRating{rating: outfit.Rating{OutfitID: r.OutfitID}, userID: userID}
	}
	cur.rating = cur.rating.Merge(r)
	cur.token = id.Token
	u.pending[key] = cur
	merged := cur.rating
	u.mu.Unlock()

	if !u.debouncer.Trigger(key, delay, func() { u.flushRating(key) }) {
		return RatingAck{}, fmt.Errorf("%w: rating queue closed", ErrInternal)
	}
	return RatingAck{OutfitID: r.OutfitID, Pending: merged, DelayMS: delay.Milliseconds()}, nil
}

func (u *Outfit) flushRating(key string) {
	u.mu.Lock()
	p, ok := u.pending[key]
	delete(u.pending, key)
	u.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := u.backend.RateOutfit(ctx, p.token, p.rating)
	u.recorder.RatingFlushed(err)
	if err != nil {
		u.logger.Warn("rating submission failed",
			zap.String("user_id", p.userID), zap.String("outfit_id", p.rating.OutfitID), zap.Error(err))
		return
	}
	u.notifier.Notify(p.userID, EventFeedbackSubmitted, p.rating)
}

// Close sends every pending rating now and stops accepting new ones.
func (u *Outfit) Close() {
	u.debouncer.Flush()
	u.debouncer.Stop()
}
