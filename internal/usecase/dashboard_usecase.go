package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"style-sync/internal/domain/gaps"
	"style-sync/internal/domain/goals"
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const SourceBackend = "backend"

type StyleGoalsResult struct {
	Goals       []goals.Goal          `json:"goals"`
	Seasons     goals.SeasonBalance   `json:"seasonBalance"`
	Feedback    goals.FeedbackSummary `json:"feedback"`
	TotalItems  int                   `json:"totalItems"`
	Preferences []string              `json:"preferences"`
	Partial     bool                  `json:"partial"`
	Memoized    bool                  `json:"memoized"`
}

type WardrobeGapsResult struct {
	Source string `json:"source"`
	Report any    `json:"report"`
}

type DashboardUsecase interface {
	StyleGoals(ctx context.Context, id profile.Identity) (StyleGoalsResult, error)
	WardrobeGaps(ctx context.Context, id profile.Identity) (WardrobeGapsResult, error)
}

type Dashboard struct {
	wardrobe WardrobeBackend
	profiles ProfileBackend
	fallback profile.Repository
	recorder Recorder
	logger   *zap.Logger

	memo *lru.Cache[string, []goals.Goal]
}

func NewDashboardUsecase(wb WardrobeBackend, pb ProfileBackend, fallback profile.Repository, memoSize int, rec Recorder, logger *zap.Logger) (*Dashboard, error) {
	if memoSize <= 0 {
		memoSize = 256
	}
	memo, err := lru.New[string, []goals.Goal](memoSize)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{wardrobe: wb, profiles: pb, fallback: fallback, recorder: rec, logger: logger, memo: memo}, nil
}

// StyleGoals fetches wardrobe, feedback and profile concurrently. Only an
// authorization failure aborts; other failures degrade to partial input.
func (u *Dashboard) StyleGoals(ctx context.Context, id profile.Identity) (StyleGoalsResult, error) {
	var (
		items   []outfit.Item
		fb      goals.FeedbackSummary
		prefs   []string
		partial atomic.Bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := u.wardrobe.ListWardrobe(gctx, id.Token)
		if err != nil {
			return u.degrade(err, "wardrobe", &partial)
		}
		items = v
		return nil
	})
	g.Go(func() error {
		v, err := u.wardrobe.FeedbackSummary(gctx, id.Token)
		if err != nil {
			return u.degrade(err, "feedback_summary", &partial)
		}
		fb = v
		return nil
	})
	g.Go(func() error {
		p, err := u.profile(gctx, id)
		if err != nil {
			return u.degrade(err, "profile", &partial)
		}
		prefs = p.StylePreferences
		return nil
	})
	if err := g.Wait(); err != nil {
		return StyleGoalsResult{}, err
	}

	res := StyleGoalsResult{
		Seasons:     goals.Seasons(items),
		Feedback:    fb,
		TotalItems:  len(items),
		Preferences: prefs,
		Partial:     partial.Load(),
	}
	if res.Preferences == nil {
		res.Preferences = []string{}
	}

	key := goals.Key(items, prefs, fb)
	if cached, ok := u.memo.Get(key); ok {
		res.Goals = cached
		res.Memoized = true
		return res, nil
	}
	res.Goals = goals.Compute(items, prefs, fb)
	u.memo.Add(key, res.Goals)
	return res, nil
}

func (u *Dashboard) profile(ctx context.Context, id profile.Identity) (profile.Profile, error) {
	p, err := u.profiles.GetProfile(ctx, id.Token)
	if err == nil {
		return p, nil
	}
	if u.fallback != nil && id.UserID != "" && !errors.Is(classifyBackendError(err), ErrUnauthorized) {
		if fp, ferr := u.fallback.Get(ctx, id.UserID); ferr == nil {
			return fp, nil
		}
	}
	return profile.Profile{}, err
}

func (u *Dashboard) degrade(err error, component string, partial *atomic.Bool) error {
	if errors.Is(classifyBackendError(err), ErrUnauthorized) {
		return ErrUnauthorized
	}
	u.logger.Warn("dashboard input unavailable", zap.String("component", component), zap.Error(err))
	u.recorder.Fallback(component)
	partial.Store(true)
	return nil
}

// WardrobeGaps prefers the backend analysis and falls back to the local
// essentials check over the wardrobe listing.
func (u *Dashboard) WardrobeGaps(ctx context.Context, id profile.Identity) (WardrobeGapsResult, error) {
	raw, err := u.wardrobe.WardrobeGaps(ctx, id.Token)
	if err == nil && json.Valid(raw) {
		return WardrobeGapsResult{Source: SourceBackend, Report: raw}, nil
	}
	if err != nil {
		if errors.Is(classifyBackendError(err), ErrUnauthorized) {
			return WardrobeGapsResult{}, ErrUnauthorized
		}
		u.logger.Warn("wardrobe gaps unavailable, analysing locally", zap.Error(err))
	}
	u.recorder.Fallback("wardrobe_gaps")

	items, lerr := u.wardrobe.ListWardrobe(ctx, id.Token)
	if lerr != nil {
		u.logger.Warn("wardrobe listing unavailable", zap.Error(lerr))
	}
	return WardrobeGapsResult{Source: gaps.SourceLocal, Report: gaps.Analyze(items)}, nil
}
