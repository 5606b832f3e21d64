// Package openweather is the fallback provider adapter. It never touches
// the AI provider's credential and builds a complete bundle from the
// conventional current-weather and 5-day/3-hour forecast endpoints.
// Panchang data has no source here, so the static mock snapshot is used.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/httputil"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/metrics"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/normalize"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrNoKey is returned when no credential is configured; no call is made.
var ErrNoKey = errors.New("openweather: api key not configured")

const maxDailyBuckets = 7
const hourlyPoints = 6

type Client struct {
	apiKey string
	client *http.Client
	loc    *time.Location

	// BaseURL is overridable for tests.
	BaseURL string
}

func New(apiKey string, loc *time.Location) *Client {
	if loc == nil {
		loc = time.UTC
	}
	return &Client{
		apiKey:  apiKey,
		client:  httputil.NewClient(),
		loc:     loc,
		BaseURL: defaultBaseURL,
	}
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type forecastResponse struct {
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp    float64 `json:"temp"`
		TempMax float64 `json:"temp_max"`
		TempMin float64 `json:"temp_min"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// FetchBundle builds a full bundle for a city. Temperatures come back in
// Fahrenheit (units=imperial). One call each to the current and forecast
// endpoints; HTTP-level retries on transient statuses stay inside this
// single fallback attempt.
func (c *Client) FetchBundle(ctx context.Context, city string) (*models.Bundle, error) {
	if c.apiKey == "" {
		return nil, ErrNoKey
	}

	timer := metrics.ObserveProviderLatency("openweathermap")
	defer timer.ObserveDuration()

	var current currentResponse
	if err := c.get(ctx, "/weather", url.Values{"q": {city}}, &current); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("openweathermap", "error").Inc()
		return nil, fmt.Errorf("fetch current for %q: %w", city, err)
	}

	var forecast forecastResponse
	if err := c.get(ctx, "/forecast", url.Values{"q": {city}}, &forecast); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("openweathermap", "error").Inc()
		return nil, fmt.Errorf("fetch forecast for %q: %w", city, err)
	}

	now := time.Now().In(c.loc)
	bundle := &models.Bundle{
		Weather:   c.snapshot(current, city, now),
		Forecast:  aggregateDaily(forecast.List),
		Hourly:    c.hourly(forecast.List),
		Panchang:  models.MockPanchang(),
		Unit:      models.UnitFahrenheit,
		Provider:  "openweathermap",
		FetchedAt: now,
	}

	metrics.ProviderCallsTotal.WithLabelValues("openweathermap", "ok").Inc()
	return bundle, nil
}

// CityForCoords resolves coordinates to a city name via the current-weather
// endpoint, the preliminary lookup for geolocated searches.
func (c *Client) CityForCoords(ctx context.Context, lat, lon float64) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoKey
	}

	var current currentResponse
	values := url.Values{
		"lat": {fmt.Sprintf("%.4f", lat)},
		"lon": {fmt.Sprintf("%.4f", lon)},
	}
	if err := c.get(ctx, "/weather", values, &current); err != nil {
		return "", fmt.Errorf("resolve coords %.4f,%.4f: %w", lat, lon, err)
	}
	if current.Name == "" {
		return "", fmt.Errorf("no city name for coords %.4f,%.4f", lat, lon)
	}
	return current.Name, nil
}

func (c *Client) snapshot(current currentResponse, city string, now time.Time) models.WeatherSnapshot {
	def := models.DefaultWeather()

	condition := def.Condition
	if len(current.Weather) > 0 {
		condition = normalize.TitleCase(current.Weather[0].Main)
	}

	location := city
	if current.Name != "" {
		location = current.Name
		if current.Sys.Country != "" {
			location += ", " + current.Sys.Country
		}
	}

	return models.WeatherSnapshot{
		Temp:      math.Round(current.Main.Temp),
		FeelsLike: math.Round(current.Main.FeelsLike),
		Condition: condition,
		Wind:      fmt.Sprintf("%.0f mph", current.Wind.Speed),
		Location:  location,
		Icon:      normalize.Icon(condition),
		Date:      now.Format("Monday, 2 Jan"),
		Time:      now.Format("03:04 PM"),
	}
}

// aggregateDaily folds 3-hour samples into daily buckets in first-seen
// order: high is the max of temp_max, low the min of temp_min per calendar
// day, condition comes from the day's first sample.
func aggregateDaily(items []forecastItem) []models.ForecastDay {
	type bucket struct {
		high, low float64
		condition string
		date      time.Time
	}

	var order []string
	buckets := make(map[string]*bucket)

	for _, item := range items {
		if len(item.DtTxt) < 10 {
			continue
		}
		day := item.DtTxt[:10]

		b, ok := buckets[day]
		if !ok {
			date, err := time.Parse("2006-01-02", day)
			if err != nil {
				continue
			}
			condition := ""
			if len(item.Weather) > 0 {
				condition = item.Weather[0].Main
			}
			buckets[day] = &bucket{
				high:      item.Main.TempMax,
				low:       item.Main.TempMin,
				condition: condition,
				date:      date,
			}
			order = append(order, day)
			continue
		}

		b.high = math.Max(b.high, item.Main.TempMax)
		b.low = math.Min(b.low, item.Main.TempMin)
	}

	if len(order) > maxDailyBuckets {
		order = order[:maxDailyBuckets]
	}

	out := make([]models.ForecastDay, 0, len(order))
	for _, day := range order {
		b := buckets[day]
		condition := normalize.TitleCase(b.condition)
		out = append(out, models.ForecastDay{
			Day:       normalize.DayLabel(b.date.Weekday().String()),
			Icon:      normalize.Icon(condition),
			High:      math.Round(b.high),
			Low:       math.Round(b.low),
			Condition: condition,
		})
	}
	return out
}

func (c *Client) hourly(items []forecastItem) []models.HourlyPoint {
	if len(items) > hourlyPoints {
		items = items[:hourlyPoints]
	}
	out := make([]models.HourlyPoint, 0, len(items))
	for _, item := range items {
		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Main
		}
		out = append(out, models.HourlyPoint{
			Time: time.Unix(item.Dt, 0).In(c.loc).Format("3 PM"),
			Icon: normalize.Icon(condition),
			Temp: math.Round(item.Main.Temp),
		})
	}
	return out
}

// get performs one endpoint call with retries on transient failures.
// Auth, quota and client errors are permanent: a bad key fails the whole
// fallback rather than hammering the API.
func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	values.Set("appid", c.apiKey)
	values.Set("units", "imperial")
	endpoint := c.BaseURL + path + "?" + values.Encode()

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 20 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	return nil
}
