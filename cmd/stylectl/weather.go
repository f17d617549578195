package main

import (
	"time"

	"style-sync/internal/domain/outfit"
	"style-sync/internal/domain/weather"

	"github.com/spf13/cobra"
)

type weatherOutput struct {
	Weather  weather.Snapshot `json:"weather"`
	Params   weather.Params   `json:"params"`
	Fallback outfit.Outfit    `json:"fallbackOutfit"`
}

func newWeatherCmd() *cobra.Command {
	var s weather.Snapshot

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Map weather conditions to outfit generation parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := time.Now()
			s.ObservedAt = now.UTC()
			p := weather.Map(s)
			return writeJSON(cmd.OutOrStdout(), weatherOutput{
				Weather:  s,
				Params:   p,
				Fallback: outfit.Fallback(p, &s, now),
			})
		},
	}

	cmd.Flags().Float64Var(&s.TemperatureF, "temp", 70, "temperature in fahrenheit")
	cmd.Flags().StringVar(&s.Condition, "condition", "Clear", "weather condition, e.g. Rain or Partly Cloudy")
	cmd.Flags().Float64Var(&s.Humidity, "humidity", 50, "relative humidity percent")
	cmd.Flags().Float64Var(&s.WindSpeedMPH, "wind", 0, "wind speed in mph")
	cmd.Flags().Float64Var(&s.PrecipitationIn, "precip", 0, "precipitation in inches")
	return cmd
}
