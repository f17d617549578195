package gaps

import (
	"fmt"
	"math"
	"strings"

	"style-sync/internal/domain/outfit"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type essential struct {
	category    string
	recommended int
	keywords    []string
	suggestion  string
}

var essentials = []essential{
	{"tops", 5, []string{"top", "shirt", "blouse", "tee", "t-shirt", "sweater", "knit", "polo", "cardigan"}, "a crisp white shirt or a fine-knit sweater"},
	{"bottoms", 3, []string{"bottom", "pant", "trouser", "jean", "skirt", "short", "chino"}, "well-fitted dark jeans or tailored trousers"},
	{"outerwear", 2, []string{"outerwear", "coat", "jacket", "blazer", "trench", "parka"}, "a versatile blazer or trench coat"},
	{"shoes", 3, []string{"shoe", "sneaker", "boot", "loafer", "heel", "sandal", "flat"}, "clean white sneakers or leather loafers"},
	{"accessories", 2, []string{"accessor", "bag", "belt", "scarf", "hat", "jewel", "watch", "sunglass"}, "a structured leather bag or a classic belt"},
	{"dresses and suits", 1, []string{"dress", "suit", "jumpsuit"}, "a little black dress or a tailored suit"},
}

type Gap struct {
	Category    string   `json:"category"`
	Current     int      `json:"current"`
	Recommended int      `json:"recommended"`
	Priority    Priority `json:"priority"`
	Suggestion  string   `json:"suggestion"`
}

type Report struct {
	TotalItems   int            `json:"totalItems"`
	Counts       map[string]int `json:"counts"`
	Gaps         []Gap          `json:"gaps"`
	Completeness int            `json:"completeness"`
	Source       string         `json:"source"`
}

const SourceLocal = "local"

func classify(it outfit.Item) (string, bool) {
	t := strings.ToLower(strings.TrimSpace(it.Type))
	if t == "" {
		t = strings.ToLower(it.Name)
	}
	for _, e := range essentials {
		for _, kw := range e.keywords {
			if strings.Contains(t, kw) {
				return e.category, true
			}
		}
	}
	return "", false
}

// Analyze compares the wardrobe with the recommended minimum per essential
// category.
func Analyze(items []outfit.Item) Report {
	r := Report{
		TotalItems: len(items),
		Counts:     make(map[string]int, len(essentials)),
		Gaps:       []Gap{},
		Source:     SourceLocal,
	}
	for _, e := range essentials {
		r.Counts[e.category] = 0
	}
	for _, it := range items {
		if c, ok := classify(it); ok {
			r.Counts[c]++
		}
	}

	var covered, required float64
	for _, e := range essentials {
		have := r.Counts[e.category]
		required += float64(e.recommended)
		covered += math.Min(float64(have), float64(e.recommended))
		if have >= e.recommended {
			continue
		}

		p := PriorityLow
		switch {
		case have == 0:
			p = PriorityHigh
		case float64(have) < float64(e.recommended)*0.5:
			p = PriorityMedium
		}
		r.Gaps = append(r.Gaps, Gap{
			Category:    e.category,
			Current:     have,
			Recommended: e.recommended,
			Priority:    p,
			Suggestion:  fmt.Sprintf("Consider adding %s.", e.suggestion),
		})
	}
	r.Completeness = int(math.Round(covered * 100 / required))
	return r
}
