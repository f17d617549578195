package goals

import "strings"

type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

var AllSeasons = []Season{Spring, Summer, Fall, Winter}

const (
	underRatio = 0.7
	overRatio  = 1.3
)

type SeasonBalance struct {
	Counts   map[Season]int `json:"counts"`
	Expected float64        `json:"expected"`
	Under    []Season       `json:"under"`
	Over     []Season       `json:"over"`
	Score    int            `json:"score"`
}

func parseSeason(s string) (Season, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spring":
		return Spring, true
	case "summer":
		return Summer, true
	case "fall", "autumn":
		return Fall, true
	case "winter":
		return Winter, true
	default:
		return "", false
	}
}

// Seasons compares each season's item count with an equal share of the
// whole wardrobe.
func Seasons(items []WardrobeItem) SeasonBalance {
	b := SeasonBalance{Counts: make(map[Season]int, len(AllSeasons)), Under: []Season{}, Over: []Season{}}
	for _, s := range AllSeasons {
		b.Counts[s] = 0
	}
	if len(items) == 0 {
		return b
	}

	for _, it := range items {
		if s, ok := parseSeason(it.Season); ok {
			b.Counts[s]++
		}
	}

	b.Expected = float64(len(items)) / 4
	for _, s := range AllSeasons {
		c := float64(b.Counts[s])
		switch {
		case c < b.Expected*underRatio:
			b.Under = append(b.Under, s)
		case c > b.Expected*overRatio:
			b.Over = append(b.Over, s)
		}
	}

	b.Score = max(0, 100-25*(len(b.Under)+len(b.Over)))
	return b
}

func joinSeasons(ss []Season) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
