package usecase

import (
	"context"
	"errors"
	"strings"

	"style-sync/internal/domain/persona"
	"style-sync/internal/domain/profile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	PersonaSourceStored     = "stored"
	PersonaSourceRecomputed = "recomputed"
	PersonaSourceDefault    = "default"
)

type PersonaResult struct {
	Persona         persona.Persona     `json:"persona"`
	Celebrities     []string            `json:"celebrities"`
	Source          string              `json:"source"`
	ProfileSource   string              `json:"profileSource"`
	Personality     persona.Personality `json:"stylePersonality"`
	HybridStyleName string              `json:"hybridStyleName"`
	Ranking         []persona.Ranked    `json:"ranking,omitempty"`
}

type PersonaUsecase interface {
	Resolve(ctx context.Context, id profile.Identity) (PersonaResult, error)
	Catalog() []persona.Persona
}

type Persona struct {
	backend  ProfileBackend
	fallback profile.Repository
	recorder Recorder
	logger   *zap.Logger

	group singleflight.Group
}

func NewPersonaUsecase(be ProfileBackend, fallback profile.Repository, rec Recorder, logger *zap.Logger) *Persona {
	if rec == nil {
		rec = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Persona{backend: be, fallback: fallback, recorder: rec, logger: logger}
}

func (u *Persona) Catalog() []persona.Persona {
	return persona.All()
}

// Resolve finds the caller's persona. Concurrent calls for one user share a
// single profile fetch.
func (u *Persona) Resolve(ctx context.Context, id profile.Identity) (PersonaResult, error) {
	key := strings.TrimSpace(id.UserID)
	if key == "" {
		return PersonaResult{}, ErrUnauthorized
	}
	v, err, _ := u.group.Do(key, func() (any, error) {
		return u.resolve(ctx, id)
	})
	if err != nil {
		return PersonaResult{}, err
	}
	return v.(PersonaResult), nil
}

func (u *Persona) resolve(ctx context.Context, id profile.Identity) (PersonaResult, error) {
	p, source, err := u.loadProfile(ctx, id)
	if err != nil {
		return PersonaResult{}, err
	}
	if source == "" {
		u.recorder.Fallback("persona")
		def := persona.Default()
		base := persona.ScorePersonality(nil, nil)
		return PersonaResult{
			Persona:         def,
			Celebrities:     def.CelebritiesFor(persona.ParseGender("")),
			Source:          PersonaSourceDefault,
			ProfileSource:   PersonaSourceDefault,
			Personality:     base,
			HybridStyleName: persona.HybridStyleName(base, nil),
		}, nil
	}

	answers := p.AnswerMap()
	res := PersonaResult{ProfileSource: source}

	if p.StylePersona != nil {
		if stored, ok := persona.Lookup(*p.StylePersona); ok {
			res.Persona = stored
			res.Source = PersonaSourceStored
		}
	}
	if res.Source == "" {
		scored := persona.Score(answers, p.StylePreferences)
		res.Persona, _ = persona.Lookup(scored.Persona)
		res.Ranking = scored.Ranking
		res.Source = PersonaSourceRecomputed
		if len(answers) == 0 && len(p.StylePreferences) == 0 {
			res.Source = PersonaSourceDefault
		}
	}

	res.Personality = p.StylePersonality.Clamp()
	if res.Personality == (persona.Personality{}) {
		res.Personality = persona.ScorePersonality(answers, p.StylePreferences)
	}
	res.HybridStyleName = strings.TrimSpace(p.HybridStyleName)
	if res.HybridStyleName == "" {
		res.HybridStyleName = persona.HybridStyleName(res.Personality, p.StylePreferences)
	}
	res.Celebrities = res.Persona.CelebritiesFor(persona.ParseGender(p.Gender))
	return res, nil
}

// loadProfile tries the backend, then the fallback store. An empty source
// with a nil error means no profile exists anywhere.
func (u *Persona) loadProfile(ctx context.Context, id profile.Identity) (profile.Profile, string, error) {
	if u.backend != nil && id.Token != "" {
		p, err := u.backend.GetProfile(ctx, id.Token)
		if err == nil {
			return p, PersistedToBackend, nil
		}
		if errors.Is(classifyBackendError(err), ErrUnauthorized) {
			return profile.Profile{}, "", ErrUnauthorized
		}
		u.logger.Warn("profile fetch failed, trying fallback store", zap.String("user_id", id.UserID), zap.Error(err))
	}

	if u.fallback != nil {
		p, err := u.fallback.Get(ctx, id.UserID)
		if err == nil {
			return p, PersistedToFallback, nil
		}
		if !errors.Is(err, profile.ErrNotFound) {
			u.logger.Warn("fallback profile read failed", zap.String("user_id", id.UserID), zap.Error(err))
		}
	}
	return profile.Profile{}, "", nil
}
