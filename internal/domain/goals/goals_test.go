package goals

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wardrobe(n int, fn func(i int) WardrobeItem) []WardrobeItem {
	out := make([]WardrobeItem, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("Old Money", "old money"))
	assert.True(t, Matches("Minimalist chic", "minimalist"))
	assert.True(t, Matches("boho", "Boho-chic"))
	assert.False(t, Matches("streetwear", "classic"))
	assert.False(t, Matches("", "classic"))
}

func TestTargets(t *testing.T) {
	assert.Equal(t, 5, CollectionTarget(0))
	assert.Equal(t, 5, CollectionTarget(39))
	assert.Equal(t, 6, CollectionTarget(40))
	assert.Equal(t, 15, CollectionTarget(500))

	assert.Equal(t, 5, ColorTarget(10))
	assert.Equal(t, 6, ColorTarget(20))
	assert.Equal(t, 8, ColorTarget(100))
}

func TestSeasons_EqualCountsScoreHundred(t *testing.T) {
	items := wardrobe(8, func(i int) WardrobeItem {
		return WardrobeItem{ID: fmt.Sprint(i), Season: string(AllSeasons[i%4])}
	})

	b := Seasons(items)
	assert.Equal(t, 100, b.Score)
	assert.Empty(t, b.Under)
	assert.Empty(t, b.Over)
	assert.Equal(t, 2.0, b.Expected)
}

func TestSeasons_Imbalanced(t *testing.T) {
	items := []WardrobeItem{
		{ID: "1", Season: "Summer"}, {ID: "2", Season: "summer"}, {ID: "3", Season: "summer"},
		{ID: "4", Season: "summer"}, {ID: "5", Season: "Autumn"}, {ID: "6", Season: "winter"},
		{ID: "7", Season: "winter"}, {ID: "8", Season: "fall"},
	}

	b := Seasons(items)
	assert.Equal(t, []Season{Spring}, b.Under)
	assert.Equal(t, []Season{Summer}, b.Over)
	assert.Equal(t, 50, b.Score)
	assert.Equal(t, 2, b.Counts[Fall])
}

func TestSeasons_ScoreFloorsAtZero(t *testing.T) {
	items := wardrobe(4, func(i int) WardrobeItem { return WardrobeItem{ID: fmt.Sprint(i)} })
	b := Seasons(items)
	assert.Len(t, b.Under, 4)
	assert.Equal(t, 0, b.Score)

	assert.Equal(t, 0, Seasons(nil).Score)
}

func TestCompute(t *testing.T) {
	items := wardrobe(40, func(i int) WardrobeItem {
		it := WardrobeItem{
			ID:     fmt.Sprint(i),
			Type:   []string{"shirt", "trousers", "coat", "shoes", "bag", "dress"}[i%6],
			Color:  []string{"black", "white", "navy", "camel"}[i%4],
			Season: string(AllSeasons[i%4]),
		}
		if i < 7 {
			it.Style = "Old Money"
		}
		if i == 7 {
			it.Tags = []string{"old money staple"}
		}
		return it
	})

	goals := Compute(items, []string{"Old Money", " ", "Streetwear"}, FeedbackSummary{Total: 4, AverageRating: 4.5})
	require.Len(t, goals, 6)

	oldMoney := goals[0]
	assert.Equal(t, CategoryCollection, oldMoney.Category)
	assert.Equal(t, 6, oldMoney.Target)
	assert.Equal(t, 8, oldMoney.Current)
	assert.Equal(t, 100, oldMoney.Progress)

	street := goals[1]
	assert.Equal(t, 0, street.Current)
	assert.Equal(t, 0, street.Progress)

	assert.Equal(t, CategoryBalance, goals[2].Category)
	assert.Equal(t, 100, goals[2].Current)

	variety := goals[3]
	assert.Equal(t, 8, variety.Target)
	assert.Equal(t, 4, variety.Current)
	assert.Equal(t, 50, variety.Progress)

	assert.Equal(t, 6, goals[4].Current)
	assert.Equal(t, 100, goals[4].Progress)

	fb := goals[5]
	assert.Equal(t, 40, fb.Progress)
	assert.Contains(t, fb.Insight, "4.5")
}

func TestKey_StableAcrossOrder(t *testing.T) {
	a := []WardrobeItem{{ID: "1"}, {ID: "2"}}
	b := []WardrobeItem{{ID: "2"}, {ID: "1"}}
	assert.Equal(t, Key(a, []string{"A", "b"}, FeedbackSummary{}), Key(b, []string{"B", "a"}, FeedbackSummary{}))
	assert.NotEqual(t, Key(a, nil, FeedbackSummary{}), Key(a, nil, FeedbackSummary{Total: 1}))
}
