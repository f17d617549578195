package goals

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"style-sync/internal/domain/outfit"
)

type WardrobeItem = outfit.Item

type Category string

const (
	CategoryCollection Category = "collection"
	CategoryBalance    Category = "balance"
	CategoryVariety    Category = "variety"
	CategoryExpansion  Category = "expansion"
	CategoryFeedback   Category = "feedback"
)

const (
	expansionTarget = 6
	feedbackTarget  = 10
)

type FeedbackSummary struct {
	Total         int     `json:"totalFeedback"`
	AverageRating float64 `json:"averageRating"`
	Liked         int     `json:"likedCount"`
	Disliked      int     `json:"dislikedCount"`
}

type Goal struct {
	Name           string   `json:"name"`
	Category       Category `json:"category"`
	Target         int      `json:"target"`
	Current        int      `json:"current"`
	Progress       int      `json:"progress"`
	Insight        string   `json:"insight"`
	Recommendation string   `json:"recommendation"`
}

// Matches is case-insensitive equality or substring containment in either
// direction.
func Matches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func CollectionTarget(total int) int {
	t := int(math.Floor(float64(total) * 0.15))
	return min(15, max(5, t))
}

func ColorTarget(total int) int {
	t := int(math.Floor(float64(total) * 0.3))
	return min(8, max(5, t))
}

func progress(current, target int) int {
	if target <= 0 {
		return 100
	}
	p := int(math.Round(float64(current) * 100 / float64(target)))
	return min(100, max(0, p))
}

func itemMatchesStyle(it WardrobeItem, pref string) bool {
	if Matches(it.Style, pref) {
		return true
	}
	for _, tag := range it.Tags {
		if Matches(tag, pref) {
			return true
		}
	}
	return false
}

// Compute derives every dashboard goal from the current wardrobe snapshot.
func Compute(items []WardrobeItem, preferences []string, fb FeedbackSummary) []Goal {
	total := len(items)
	out := make([]Goal, 0, len(preferences)+4)

	target := CollectionTarget(total)
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		count := 0
		for _, it := range items {
			if itemMatchesStyle(it, pref) {
				count++
			}
		}
		g := Goal{
			Name:     pref + " Collection",
			Category: CategoryCollection,
			Target:   target,
			Current:  count,
			Progress: progress(count, target),
		}
		if count >= target {
			g.Insight = fmt.Sprintf("You have %d %s pieces, enough to style a full week.", count, pref)
			g.Recommendation = "Focus on accessories that tie your " + pref + " pieces together."
		} else {
			g.Insight = fmt.Sprintf("%d of %d %s pieces collected.", count, target, pref)
			g.Recommendation = fmt.Sprintf("Add %d more %s pieces to complete this look.", target-count, pref)
		}
		out = append(out, g)
	}

	out = append(out, balanceGoal(Seasons(items)))
	out = append(out, varietyGoal(items))
	out = append(out, expansionGoal(items))
	out = append(out, feedbackGoal(fb))
	return out
}

func balanceGoal(b SeasonBalance) Goal {
	g := Goal{
		Name:     "Seasonal Balance",
		Category: CategoryBalance,
		Target:   100,
		Current:  b.Score,
		Progress: b.Score,
	}
	switch {
	case len(b.Under) == 0 && len(b.Over) == 0 && b.Score > 0:
		g.Insight = "Your wardrobe is ready for every season."
		g.Recommendation = "Keep rotating pieces as the seasons change."
	case len(b.Under) > 0:
		g.Insight = "Underrepresented: " + joinSeasons(b.Under) + "."
		g.Recommendation = "Add a few " + string(b.Under[0]) + " essentials."
	default:
		g.Insight = "Tag your items with a season to track balance."
		g.Recommendation = "Add season tags to your wardrobe items."
	}
	if len(b.Over) > 0 {
		g.Insight += " Overrepresented: " + joinSeasons(b.Over) + "."
	}
	return g
}

func varietyGoal(items []WardrobeItem) Goal {
	colors := map[string]bool{}
	for _, it := range items {
		c := strings.ToLower(strings.TrimSpace(it.Color))
		if c != "" {
			colors[c] = true
		}
	}
	target := ColorTarget(len(items))
	g := Goal{
		Name:     "Color Variety",
		Category: CategoryVariety,
		Target:   target,
		Current:  len(colors),
		Progress: progress(len(colors), target),
	}
	g.Insight = fmt.Sprintf("%d distinct colors in your wardrobe.", len(colors))
	if len(colors) >= target {
		g.Recommendation = "Experiment with pairing contrasting colors."
	} else {
		g.Recommendation = fmt.Sprintf("Introduce %d new colors to widen your options.", target-len(colors))
	}
	return g
}

func expansionGoal(items []WardrobeItem) Goal {
	types := map[string]bool{}
	for _, it := range items {
		t := strings.ToLower(strings.TrimSpace(it.Type))
		if t != "" {
			types[t] = true
		}
	}
	g := Goal{
		Name:     "Wardrobe Expansion",
		Category: CategoryExpansion,
		Target:   expansionTarget,
		Current:  len(types),
		Progress: progress(len(types), expansionTarget),
		Insight:  fmt.Sprintf("You own %d different kinds of pieces.", len(types)),
	}
	if len(types) >= expansionTarget {
		g.Recommendation = "Your wardrobe covers the core categories."
	} else {
		g.Recommendation = "Try a category you don't own yet."
	}
	return g
}

func feedbackGoal(fb FeedbackSummary) Goal {
	g := Goal{
		Name:     "Style Feedback",
		Category: CategoryFeedback,
		Target:   feedbackTarget,
		Current:  fb.Total,
		Progress: progress(fb.Total, feedbackTarget),
	}
	if fb.Total == 0 {
		g.Insight = "You haven't rated any outfits yet."
	} else {
		g.Insight = fmt.Sprintf("%d outfits rated, averaging %.1f stars.", fb.Total, fb.AverageRating)
	}
	if fb.Total >= feedbackTarget {
		g.Recommendation = "Your ratings are tuning your recommendations."
	} else {
		g.Recommendation = fmt.Sprintf("Rate %d more outfits to sharpen your suggestions.", feedbackTarget-fb.Total)
	}
	return g
}

// Key identifies a goals computation for memoization.
func Key(items []WardrobeItem, preferences []string, fb FeedbackSummary) string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	sort.Strings(ids)

	prefs := make([]string, 0, len(preferences))
	for _, p := range preferences {
		prefs = append(prefs, strings.ToLower(strings.TrimSpace(p)))
	}
	sort.Strings(prefs)

	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%.2f|%d|%d",
		strings.Join(ids, ","), strings.Join(prefs, ","), fb.Total, fb.AverageRating, fb.Liked, fb.Disliked)
	return "goals:" + hex.EncodeToString(h.Sum(nil))
}
