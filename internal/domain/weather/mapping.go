package weather

import (
	"strings"
	"time"
)

type Snapshot struct {
	TemperatureF    float64   `json:"temperature"`
	Condition       string    `json:"condition"`
	Humidity        float64   `json:"humidity"`
	WindSpeedMPH    float64   `json:"windSpeed"`
	PrecipitationIn float64   `json:"precipitation"`
	Location        string    `json:"location,omitempty"`
	ObservedAt      time.Time `json:"observedAt"`
}

// DefaultSnapshot stands in for the weather service when it is unreachable.
func DefaultSnapshot(now time.Time) Snapshot {
	return Snapshot{TemperatureF: 70, Condition: "Clear", Humidity: 50, ObservedAt: now.UTC()}
}

const (
	windyMPH        = 20
	heavyPrecipIn   = 0.5
	muggyHumidity   = 80
	muggyThresholdF = 75
)

// Map turns a weather snapshot into generation parameters. Checks run in
// order and the first match wins; wind and humidity adjust the result.
func Map(s Snapshot) Params {
	cond := strings.ToLower(s.Condition)
	t := s.TemperatureF

	var p Params
	switch {
	case containsAny(cond, "thunder", "storm"):
		p = Params{OccasionLounge, StyleCasual, MoodCozy}
	case containsAny(cond, "rain", "drizzle", "shower"),
		s.PrecipitationIn >= heavyPrecipIn && !containsAny(cond, "snow", "sleet", "blizzard"):
		p = Params{OccasionCasual, StyleClassic, MoodCozy}
	case containsAny(cond, "snow", "sleet", "blizzard"):
		p = Params{OccasionCasual, StyleClassic, MoodCozy}
	case t >= 90:
		p = Params{OccasionCasual, StyleMinimalist, MoodRelaxed}
	case t >= 80:
		p = Params{OccasionCasual, StyleBohemian, MoodPlayful}
	case t >= 65:
		if containsAny(cond, "clear", "sunny") {
			p = Params{OccasionOutdoor, StyleSporty, MoodEnergetic}
		} else {
			p = Params{OccasionCasual, StyleCasual, MoodEnergetic}
		}
	case t >= 50:
		p = Params{OccasionCasual, StyleClassic, MoodConfident}
	case t >= 32:
		p = Params{OccasionCasual, StyleClassic, MoodCozy}
	default:
		p = Params{OccasionLounge, StyleMinimalist, MoodCozy}
	}

	if s.WindSpeedMPH >= windyMPH {
		p.Style = StyleSporty
	}
	if s.Humidity >= muggyHumidity && t >= muggyThresholdF {
		p.Mood = MoodRelaxed
	}
	return p
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ConditionFromCode maps a WMO weather interpretation code to a condition.
func ConditionFromCode(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 2:
		return "Partly Cloudy"
	case code == 3:
		return "Cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67, code >= 80 && code <= 82:
		return "Rain"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
