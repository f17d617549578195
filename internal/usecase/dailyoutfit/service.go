package dailyoutfit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/weather"
	"style-sync/internal/infrastructure/backend"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Generator interface {
	GenerateOutfit(ctx context.Context, token string, in backend.GenerateRequest) (outfit.Outfit, error)
}

type WeatherSource interface {
	Current(ctx context.Context, lat, lon float64) (weather.Snapshot, error)
}

type Recorder interface {
	DailyCache(result string)
	Fallback(component string)
}

type Notifier interface {
	Notify(userID, eventType string, payload any)
}

const EventDailyOutfitReady = "daily_outfit_ready"

type Params struct {
	Lat     *float64
	Lon     *float64
	Date    string
	Refresh bool
}

type Result struct {
	Date     string           `json:"date"`
	Outfit   outfit.Outfit    `json:"outfit"`
	Weather  weather.Snapshot `json:"weather"`
	Params   weather.Params   `json:"params"`
	Cached   bool             `json:"cached"`
	Fallback bool             `json:"fallback"`
}

type Config struct {
	DefaultLat *float64
	DefaultLon *float64
}

type Service struct {
	store    Store
	gen      Generator
	weather  WeatherSource
	cfg      Config
	logger   *zap.Logger
	recorder Recorder
	notifier Notifier
	now      func() time.Time

	group singleflight.Group
}

type Option func(*Service)

func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }
func WithNotifier(n Notifier) Option { return func(s *Service) { s.notifier = n } }
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store Store, gen Generator, ws WeatherSource, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:   store,
		gen:     gen,
		weather: ws,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Get(ctx context.Context, id profile.Identity, p Params) (Result, error) {
	owner := strings.TrimSpace(id.UserID)
	if owner == "" || id.Anonymous {
		return Result{}, ErrUnauthorized
	}
	if (p.Lat == nil) != (p.Lon == nil) {
		return Result{}, fmt.Errorf("%w: lat and lon must be given together", ErrInvalidInput)
	}

	now := s.now().UTC()
	day := now
	if d := strings.TrimSpace(p.Date); d != "" {
		parsed, err := time.Parse(dateLayout, d)
		if err != nil {
			return Result{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		// One day either side of today covers clients in other time zones.
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if parsed.Before(today.AddDate(0, 0, -maxDateSkewDays)) || parsed.After(today.AddDate(0, 0, maxDateSkewDays)) {
			return Result{}, fmt.Errorf("%w: date must be within a day of today", ErrInvalidInput)
		}
		day = parsed
	}
	date := day.Format(dateLayout)

	if !p.Refresh {
		if res, ok := s.lookup(ctx, owner, date, now); ok {
			return res, nil
		}
	}

	v, err, _ := s.group.Do(Key(owner, date), func() (any, error) {
		return s.generate(ctx, id, owner, date, day, now, p)
	})
	if err != nil {
		return Result{}, err
	}
	return v.(Result), nil
}

func (s *Service) lookup(ctx context.Context, owner, date string, now time.Time) (Result, bool) {
	e, ok, err := s.store.Get(ctx, owner, date)
	if err != nil {
		s.logger.Warn("daily outfit cache read failed", zap.String("owner", owner), zap.Error(err))
		return Result{}, false
	}
	if !ok {
		s.record("miss")
		return Result{}, false
	}

	if reason := discardReason(e, owner, date, now); reason != "" {
		s.record("discard")
		s.logger.Info("discarding cached daily outfit", zap.String("owner", owner), zap.String("reason", reason))
		if err := s.store.Delete(ctx, owner, date); err != nil {
			s.logger.Warn("daily outfit cache delete failed", zap.Error(err))
		}
		return Result{}, false
	}

	s.record("hit")
	res := Result{Date: date, Outfit: e.Outfit, Cached: true}
	if e.Outfit.Weather != nil {
		res.Weather = *e.Outfit.Weather
		res.Params = weather.Map(*e.Outfit.Weather)
	}
	return res, true
}

func (s *Service) generate(ctx context.Context, id profile.Identity, owner, date string, day, now time.Time, p Params) (Result, error) {
	snap := s.currentWeather(ctx, owner, p, now)
	params := weather.Map(snap)

	res := Result{Date: date, Weather: snap, Params: params}

	o, err := s.gen.GenerateOutfit(ctx, id.Token, backend.GenerateRequest{
		Occasion: string(params.Occasion),
		Style:    string(params.Style),
		Mood:     string(params.Mood),
		Weather:  &snap,
	})
	if err != nil || !o.Usable() {
		if err != nil {
			s.logger.Warn("daily outfit generation failed", zap.String("owner", owner), zap.Error(err))
		}
		if s.recorder != nil {
			s.recorder.Fallback("daily_outfit")
		}
		res.Outfit = outfit.Fallback(params, &snap, now)
		res.Fallback = true
		return res, nil
	}

	if o.Weather == nil {
		o.Weather = &snap
	}
	res.Outfit = o

	ttl := ttlUntilEndOfDay(day, now)
	entry := Entry{
		SchemaVersion: SchemaVersion,
		OwnerID:       owner,
		Date:          date,
		ExpiresAt:     now.Add(ttl),
		Outfit:        o,
	}
	if err := s.store.Put(ctx, entry, ttl); err != nil {
		s.logger.Warn("daily outfit cache write failed", zap.String("owner", owner), zap.Error(err))
	}

	if s.notifier != nil {
		s.notifier.Notify(owner, EventDailyOutfitReady, res)
	}
	return res, nil
}

// currentWeather resolves coordinates from the request, then the saved
// location, then the configured default. Any failure yields the default
// snapshot.
func (s *Service) currentWeather(ctx context.Context, owner string, p Params, now time.Time) weather.Snapshot {
	lat, lon, ok := s.coordinates(ctx, owner, p)
	if !ok || s.weather == nil {
		return weather.DefaultSnapshot(now)
	}
	snap, err := s.weather.Current(ctx, lat, lon)
	if err != nil {
		s.logger.Warn("weather lookup failed, using default", zap.Error(err))
		if s.recorder != nil {
			s.recorder.Fallback("weather")
		}
		return weather.DefaultSnapshot(now)
	}
	return snap
}

func (s *Service) coordinates(ctx context.Context, owner string, p Params) (float64, float64, bool) {
	if p.Lat != nil && p.Lon != nil {
		return *p.Lat, *p.Lon, true
	}
	if loc, ok, err := s.store.GetLocation(ctx, owner); err == nil && ok {
		return loc.Lat, loc.Lon, true
	}
	if s.cfg.DefaultLat != nil && s.cfg.DefaultLon != nil {
		return *s.cfg.DefaultLat, *s.cfg.DefaultLon, true
	}
	return 0, 0, false
}

func (s *Service) SaveLocation(ctx context.Context, id profile.Identity, loc Location) (Location, error) {
	owner := strings.TrimSpace(id.UserID)
	if owner == "" || id.Anonymous {
		return Location{}, ErrUnauthorized
	}
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lon < -180 || loc.Lon > 180 {
		return Location{}, fmt.Errorf("%w: coordinates out of range", ErrInvalidInput)
	}
	loc.Label = strings.TrimSpace(loc.Label)
	loc.UpdatedAt = s.now().UTC()
	if err := s.store.PutLocation(ctx, owner, loc); err != nil {
		return Location{}, fmt.Errorf("save location: %w", err)
	}
	return loc, nil
}

func (s *Service) record(result string) {
	if s.recorder != nil {
		s.recorder.DailyCache(result)
	}
}
