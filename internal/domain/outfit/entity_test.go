package outfit

import (
	"testing"
	"time"

	"style-sync/internal/domain/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestUsable(t *testing.T) {
	good := Outfit{Name: "Sunday Layers", Confidence: 0.8, Items: []Item{{ID: "1", Name: "Coat", Type: "outerwear"}}}
	assert.True(t, good.Usable())

	lowConf := good
	lowConf.Confidence = 0.6
	assert.False(t, lowConf.Usable())

	noItems := good
	noItems.Items = nil
	assert.False(t, noItems.Usable())

	marked := good
	marked.Name = "Fallback Classic Outfit"
	assert.False(t, marked.Usable())
}

func TestFallback(t *testing.T) {
	p := weather.Params{Occasion: weather.OccasionCasual, Style: weather.StyleClassic, Mood: weather.MoodCozy}
	o := Fallback(p, nil, time.Now())

	assert.Contains(t, o.Name, FallbackMarker)
	assert.Empty(t, o.Items)
	assert.NotNil(t, o.Items)
	assert.Zero(t, o.Confidence)
	assert.NotEmpty(t, o.Reasoning)
	assert.False(t, o.Usable())
	assert.Equal(t, "Classic", o.Style)
}

func TestRatingValidate(t *testing.T) {
	assert.ErrorIs(t, Rating{}.Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Rating{OutfitID: "o1"}.Validate(), ErrInvalidRating)
	assert.ErrorIs(t, Rating{OutfitID: "o1", Rating: intPtr(6)}.Validate(), ErrInvalidRating)
	assert.NoError(t, Rating{OutfitID: "o1", Rating: intPtr(5)}.Validate())
	assert.NoError(t, Rating{OutfitID: "o1", Liked: boolPtr(false)}.Validate())
	assert.NoError(t, Rating{OutfitID: "o1", Feedback: "love it"}.Validate())
}

func TestRatingMerge_LastWriteWinsPerField(t *testing.T) {
	r := Rating{OutfitID: "o1", Rating: intPtr(3), Feedback: "ok"}
	r = r.Merge(Rating{OutfitID: "o1", Liked: boolPtr(true)})
	r = r.Merge(Rating{OutfitID: "o1", Rating: intPtr(5), Feedback: "  great  "})

	require.NotNil(t, r.Rating)
	assert.Equal(t, 5, *r.Rating)
	require.NotNil(t, r.Liked)
	assert.True(t, *r.Liked)
	assert.Equal(t, "great", r.Feedback)
}
