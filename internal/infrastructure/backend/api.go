package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"style-sync/internal/domain/goals"
	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/domain/quiz"
	"style-sync/internal/domain/weather"
	"style-sync/internal/pkg/jwt"
)

type GenerateRequest struct {
	Occasion string            `json:"occasion"`
	Style    string            `json:"style"`
	Mood     string            `json:"mood"`
	Weather  *weather.Snapshot `json:"weather,omitempty"`
	Notes    string            `json:"notes,omitempty"`
}

type WearRequest struct {
	OutfitID string    `json:"outfitId"`
	WornAt   time.Time `json:"wornAt"`
}

func (c *Client) GetProfile(ctx context.Context, token string) (profile.Profile, error) {
	var p profile.Profile
	err := c.do(ctx, http.MethodGet, "/api/auth/profile", token, nil, &p, "user", "profile", "data")
	return p, err
}

// ConfirmToken asks the identity endpoint whether token is genuine and
// belongs to userID. A rejected token yields jwt.ErrTokenInvalid; transport
// and 5xx failures are returned as is.
func (c *Client) ConfirmToken(ctx context.Context, token, userID string) error {
	p, err := c.GetProfile(ctx, token)
	switch {
	case err == nil:
		if p.ID != "" && p.ID != userID {
			return jwt.ErrTokenInvalid
		}
		return nil
	case StatusCode(err) == http.StatusNotFound:
		// Authenticated, no profile saved yet.
		return nil
	case IsUnavailable(err):
		return err
	default:
		return fmt.Errorf("%w: %v", jwt.ErrTokenInvalid, err)
	}
}

func (c *Client) PutProfile(ctx context.Context, token string, p profile.Profile) error {
	return c.do(ctx, http.MethodPut, "/api/auth/profile", token, p, nil)
}

func (c *Client) GenerateOutfit(ctx context.Context, token string, in GenerateRequest) (outfit.Outfit, error) {
	var o outfit.Outfit
	err := c.do(ctx, http.MethodPost, "/api/outfits/generate", token, in, &o, "outfit", "data")
	return o, err
}

func (c *Client) CreateOutfit(ctx context.Context, token string, o outfit.Outfit) (outfit.Outfit, error) {
	var out outfit.Outfit
	err := c.do(ctx, http.MethodPost, "/api/outfit/create", token, o, &out, "outfit", "data")
	return out, err
}

// WearOutfit returns the backend answer untouched.
func (c *Client) WearOutfit(ctx context.Context, token string, in WearRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodPost, "/api/outfit/wear", token, in, &out)
	return out, err
}

func (c *Client) RateOutfit(ctx context.Context, token string, r outfit.Rating) error {
	return c.do(ctx, http.MethodPost, "/api/outfits/rate", token, r, nil)
}

func (c *Client) ListWardrobe(ctx context.Context, token string) ([]outfit.Item, error) {
	var items []outfit.Item
	err := c.do(ctx, http.MethodGet, "/api/wardrobe", token, nil, &items, "items", "wardrobe", "data")
	return items, err
}

func (c *Client) WardrobeGaps(ctx context.Context, token string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, http.MethodGet, "/api/wardrobe/gaps", token, nil, &out)
	return out, err
}

func (c *Client) FeedbackSummary(ctx context.Context, token string) (goals.FeedbackSummary, error) {
	var fb goals.FeedbackSummary
	err := c.do(ctx, http.MethodGet, "/api/feedback/user/summary", token, nil, &fb, "summary", "data")
	return fb, err
}

func (c *Client) DebugStats(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	err := c.do(ctx, http.MethodGet, "/api/debug-stats", "", nil, &out)
	return out, err
}

func (c *Client) QuizQuestions(ctx context.Context) ([]quiz.Question, error) {
	var qs []quiz.Question
	err := c.do(ctx, http.MethodGet, "/api/style-quiz/questions", "", nil, &qs, "questions", "data")
	return qs, err
}
