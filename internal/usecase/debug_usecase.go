package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type DebugUsecase interface {
	Stats(ctx context.Context) map[string]any
}

type Debug struct {
	source   StatsSource
	recorder Recorder
	logger   *zap.Logger
	now      func() time.Time
}

func NewDebugUsecase(src StatsSource, rec Recorder, logger *zap.Logger) *Debug {
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Debug{source: src, recorder: rec, logger: logger, now: time.Now}
}

// Stats never fails: an unreachable backend yields a payload flagged mock.
func (u *Debug) Stats(ctx context.Context) map[string]any {
	if u.source != nil {
		stats, err := u.source.DebugStats(ctx)
		if err == nil && stats != nil {
			return stats
		}
		u.logger.Warn("debug stats unavailable, serving mock", zap.Error(err))
	}
	u.recorder.Fallback("debug_stats")
	return map[string]any{
		"mock":        true,
		"users":       0,
		"outfits":     0,
		"wardrobe":    0,
		"feedback":    0,
		"generatedAt": u.now().UTC().Format(time.RFC3339),
	}
}
