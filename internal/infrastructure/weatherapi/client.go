// Package weatherapi reads current conditions from an Open-Meteo compatible
// forecast service.
package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"style-sync/internal/domain/weather"

	"go.uber.org/zap"
)

var ErrInvalidCoordinates = errors.New("invalid coordinates")

const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,precipitation,weather_code"

type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	now     func() time.Time
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
		now:     time.Now,
	}
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time          string  `json:"time"`
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Current returns conditions in imperial units at the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (weather.Snapshot, error) {
	if !ValidCoordinates(lat, lon) {
		return weather.Snapshot{}, ErrInvalidCoordinates
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current", currentFields)
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("precipitation_unit", "inch")
	endpoint := c.baseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Snapshot{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		c.logger.Warn("weather service error", zap.Int("status", resp.StatusCode), zap.String("body", bodyStr))
		return weather.Snapshot{}, fmt.Errorf("weather service: status=%d body=%s", resp.StatusCode, bodyStr)
	}

	var out forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather: %w", err)
	}

	observed := c.now().UTC()
	if t, err := time.Parse("2006-01-02T15:04", out.Current.Time); err == nil {
		observed = t
	}

	return weather.Snapshot{
		TemperatureF:    out.Current.Temperature,
		Condition:       weather.ConditionFromCode(out.Current.WeatherCode),
		Humidity:        out.Current.Humidity,
		WindSpeedMPH:    out.Current.WindSpeed,
		PrecipitationIn: out.Current.Precipitation,
		Location:        fmt.Sprintf("%.2f,%.2f", lat, lon),
		ObservedAt:      observed,
	}, nil
}
