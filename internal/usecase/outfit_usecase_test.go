package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/profile"
	"style-sync/internal/infrastructure/backend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var caller = profile.Identity{UserID: "u1", Token: "tok"}

func goodOutfit() outfit.Outfit {
	return outfit.Outfit{
		ID:         "o1",
		Name:       "Gallery Opening",
		Items:      []outfit.Item{{ID: "i1", Name: "Wool Coat", Type: "outerwear"}},
		Confidence: 0.82,
	}
}

func TestOutfitGenerate_ValidatesEnums(t *testing.T) {
	uc := NewOutfitUsecase(&mockBackend{}, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	_, err := uc.Generate(context.Background(), caller, GenerateInput{Occasion: "Hot Weather", Style: "Casual", Mood: "Relaxed"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestOutfitGenerate_AutoSave(t *testing.T) {
	be := &mockBackend{generated: goodOutfit()}
	uc := NewOutfitUsecase(be, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	res, err := uc.Generate(context.Background(), caller, GenerateInput{Occasion: "date night", Style: "elegant", Mood: "romantic", AutoSave: true})
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.True(t, res.Saved)
	require.Len(t, be.created, 1)
}

func TestOutfitGenerate_FallbackOnBackendFailure(t *testing.T) {
	be := &mockBackend{generateErr: errUnavailable}
	uc := NewOutfitUsecase(be, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	res, err := uc.Generate(context.Background(), caller, GenerateInput{Occasion: "Casual", Style: "Classic", Mood: "Cozy", AutoSave: true})
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.False(t, res.Saved)
	assert.Empty(t, res.Outfit.Items)
	assert.Contains(t, res.Outfit.Name, outfit.FallbackMarker)
	assert.Equal(t, 0.0, res.Outfit.Confidence)
	assert.Empty(t, be.created)
}

func TestOutfitGenerate_BackendValidationIsNotMasked(t *testing.T) {
	uc := NewOutfitUsecase(&mockBackend{generateErr: errUnprocess}, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	_, err := uc.Generate(context.Background(), caller, GenerateInput{Occasion: "Casual", Style: "Classic", Mood: "Cozy"})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestOutfitCreateAndWear(t *testing.T) {
	be := &mockBackend{}
	uc := NewOutfitUsecase(be, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	_, err := uc.Create(context.Background(), caller, outfit.Outfit{})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	out, err := uc.Create(context.Background(), caller, outfit.Outfit{Name: "Mine"})
	require.NoError(t, err)
	assert.Equal(t, "created-1", out.ID)
	assert.False(t, out.CreatedAt.IsZero())

	_, err = uc.Wear(context.Background(), caller, backend.WearRequest{})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	raw, err := uc.Wear(context.Background(), caller, backend.WearRequest{OutfitID: "o1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))

	be.wearErr = errUnavailable
	_, err = uc.Wear(context.Background(), caller, backend.WearRequest{OutfitID: "o1"})
	assert.True(t, errors.Is(err, ErrBackendUnavailable))
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestOutfitSubmitRating_CoalescesLastWriteWins(t *testing.T) {
	be := &mockBackend{}
	n := &recordingNotifier{}
	uc := NewOutfitUsecase(be, DebounceConfig{Rating: 30 * time.Millisecond, Feedback: 60 * time.Millisecond}, nil, n, nil)
	defer uc.Close()

	ctx := context.Background()
	_, err := uc.SubmitRating(ctx, caller, outfit.Rating{OutfitID: "o1", Rating: intPtr(2)})
	require.NoError(t, err)
	_, err = uc.SubmitRating(ctx, caller, outfit.Rating{OutfitID: "o1", Liked: boolPtr(true)})
	require.NoError(t, err)
	ack, err := uc.SubmitRating(ctx, caller, outfit.Rating{OutfitID: "o1", Rating: intPtr(5), Feedback: "love it"})
	require.NoError(t, err)
	assert.Equal(t, int64(60), ack.DelayMS)

	require.Eventually(t, func() bool { return len(be.ratings()) == 1 }, time.Second, 10*time.Millisecond)
	got := be.ratings()[0]
	assert.Equal(t, "o1", got.OutfitID)
	assert.Equal(t, 5, *got.Rating)
	assert.True(t, *got.Liked)
	assert.Equal(t, "love it", got.Feedback)

	require.Eventually(t, func() bool { return len(n.list()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "u1:"+EventFeedbackSubmitted, n.list()[0])
}

func TestOutfitSubmitRating_UsersAreSeparate(t *testing.T) {
	be := &mockBackend{}
	uc := NewOutfitUsecase(be, DebounceConfig{Rating: time.Hour, Feedback: time.Hour}, nil, nil, nil)

	ctx := context.Background()
	_, err := uc.SubmitRating(ctx, caller, outfit.Rating{OutfitID: "o1", Rating: intPtr(1)})
	require.NoError(t, err)
	_, err = uc.SubmitRating(ctx, profile.Identity{UserID: "u2", Token: "t2"}, outfit.Rating{OutfitID: "o1", Rating: intPtr(4)})
	require.NoError(t, err)

	uc.Close()
	assert.Len(t, be.ratings(), 2)

	_, err = uc.SubmitRating(ctx, caller, outfit.Rating{OutfitID: "o1", Rating: intPtr(3)})
	assert.True(t, errors.Is(err, ErrInternal))
}

func TestOutfitSubmitRating_Validation(t *testing.T) {
	uc := NewOutfitUsecase(&mockBackend{}, DebounceConfig{}, nil, nil, nil)
	defer uc.Close()

	_, err := uc.SubmitRating(context.Background(), caller, outfit.Rating{OutfitID: "o1", Rating: intPtr(6)})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.SubmitRating(context.Background(), profile.Identity{}, outfit.Rating{OutfitID: "o1", Rating: intPtr(3)})
	assert.True(t, errors.Is(err, ErrUnauthorized))
}
