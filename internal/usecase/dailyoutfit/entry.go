// Package dailyoutfit serves one weather-aware outfit per user and day,
// cached until the end of that day.
package dailyoutfit

import (
	"context"
	"errors"
	"time"

	"style-sync/internal/domain/outfit"
)

const SchemaVersion = 2

const (
	keyPrefix         = "daily-outfit:"
	locationKeyPrefix = "user-location:"
	minTTL            = time.Minute
	maxTTL            = 48 * time.Hour
	maxDateSkewDays   = 1
	locationTTL       = 30 * 24 * time.Hour
	dateLayout        = "2006-01-02"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
)

type Entry struct {
	SchemaVersion int           `json:"schemaVersion"`
	OwnerID       string        `json:"ownerId"`
	Date          string        `json:"date"`
	ExpiresAt     time.Time     `json:"expiresAt"`
	Outfit        outfit.Outfit `json:"outfit"`
}

type Location struct {
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Label     string    `json:"label,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Store interface {
	Get(ctx context.Context, owner, date string) (Entry, bool, error)
	Put(ctx context.Context, e Entry, ttl time.Duration) error
	Delete(ctx context.Context, owner, date string) error

	GetLocation(ctx context.Context, owner string) (Location, bool, error)
	PutLocation(ctx context.Context, owner string, loc Location) error
}

func Key(owner, date string) string {
	return keyPrefix + owner + ":" + date
}

func LocationKey(owner string) string {
	return locationKeyPrefix + owner
}

// discardReason explains why a stored entry must not be served to owner, or
// returns "" when it is servable.
func discardReason(e Entry, owner, date string, now time.Time) string {
	switch {
	case e.SchemaVersion != SchemaVersion:
		return "schema"
	case e.OwnerID != owner:
		return "owner"
	case e.Date != date:
		return "date"
	case !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt):
		return "expired"
	case !e.Outfit.Usable():
		return "unusable"
	default:
		return ""
	}
}

// ttlUntilEndOfDay returns the time left until midnight after date, clamped
// to [minTTL, maxTTL].
func ttlUntilEndOfDay(date time.Time, now time.Time) time.Duration {
	end := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).AddDate(0, 0, 1)
	ttl := end.Sub(now)
	switch {
	case ttl < minTTL:
		return minTTL
	case ttl > maxTTL:
		return maxTTL
	}
	return ttl
}
