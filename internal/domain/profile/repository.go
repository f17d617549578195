package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

// Repository is the fallback document store used when the backend cannot
// persist a profile.
type Repository interface {
	Save(ctx context.Context, p Profile) error
	Get(ctx context.Context, userID string) (Profile, error)
}
