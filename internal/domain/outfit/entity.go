package outfit

import (
	"errors"
	"strings"
	"time"

	"style-sync/internal/domain/weather"

	"github.com/google/uuid"
)

// FallbackMarker appears in the name of every locally substituted outfit.
const FallbackMarker = "Fallback"

const usableConfidence = 0.6

var ErrInvalidRating = errors.New("invalid rating")

type Item struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Color    string   `json:"color,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	Material string   `json:"material,omitempty"`
	Style    string   `json:"style,omitempty"`
	Season   string   `json:"season,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

type Outfit struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Style      string            `json:"style"`
	Mood       string            `json:"mood"`
	Occasion   string            `json:"occasion"`
	Items      []Item            `json:"items"`
	Reasoning  string            `json:"reasoning"`
	Confidence float64           `json:"confidence"`
	Weather    *weather.Snapshot `json:"weather,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// Usable reports whether the outfit is good enough to show and to cache.
func (o Outfit) Usable() bool {
	if o.Confidence <= usableConfidence {
		return false
	}
	if len(o.Items) == 0 {
		return false
	}
	return !strings.Contains(o.Name, FallbackMarker)
}

func Fallback(p weather.Params, w *weather.Snapshot, now time.Time) Outfit {
	return Outfit{
		ID:         "fallback-" + uuid.NewString(),
		Name:       FallbackMarker + " " + string(p.Style) + " Outfit",
		Style:      string(p.Style),
		Mood:       string(p.Mood),
		Occasion:   string(p.Occasion),
		Items:      []Item{},
		Reasoning:  "We couldn't reach the stylist right now. Try a " + strings.ToLower(string(p.Style)) + " look from your favourite pieces.",
		Confidence: 0,
		Weather:    w,
		CreatedAt:  now.UTC(),
	}
}

type Rating struct {
	OutfitID string `json:"outfitId"`
	Rating   *int   `json:"rating,omitempty"`
	Liked    *bool  `json:"liked,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

func (r Rating) Validate() error {
	if strings.TrimSpace(r.OutfitID) == "" {
		return ErrInvalidRating
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return ErrInvalidRating
	}
	if r.Rating == nil && r.Liked == nil && strings.TrimSpace(r.Feedback) == "" {
		return ErrInvalidRating
	}
	return nil
}

// Merge overlays the fields set in newer onto r.
func (r Rating) Merge(newer Rating) Rating {
	out := r
	if out.OutfitID == "" {
		out.OutfitID = newer.OutfitID
	}
	if newer.Rating != nil {
		v := *newer.Rating
		out.Rating = &v
	}
	if newer.Liked != nil {
		v := *newer.Liked
		out.Liked = &v
	}
	if strings.TrimSpace(newer.Feedback) != "" {
		out.Feedback = strings.TrimSpace(newer.Feedback)
	}
	return out
}
