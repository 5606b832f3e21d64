package openweather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

const currentFixture = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 58.6, "feels_like": 55.2, "temp_max": 60, "temp_min": 54},
	"wind": {"speed": 11.5},
	"weather": [{"main": "Rain", "description": "light rain"}]
}`

// Eight 3-hour samples spanning exactly one calendar day.
func forecastFixture() string {
	items := ""
	temps := []struct{ max, min float64 }{
		{55, 50}, {58, 51}, {62, 53}, {66, 55}, {64, 54}, {60, 52}, {57, 49}, {54, 47},
	}
	for i, tt := range temps {
		if i > 0 {
			items += ","
		}
		hour := i * 3
		dt := time.Date(2024, 10, 14, hour, 0, 0, 0, time.UTC).Unix()
		items += fmt.Sprintf(`{
			"dt": %d,
			"dt_txt": "2024-10-14 %02d:00:00",
			"main": {"temp": %g, "temp_max": %g, "temp_min": %g},
			"weather": [{"main": "Clouds"}]
		}`, dt, hour, tt.max, tt.max, tt.min)
	}
	return `{"list": [` + items + `]}`
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("appid") == "" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/weather":
			fmt.Fprint(w, currentFixture)
		case "/forecast":
			fmt.Fprint(w, forecastFixture())
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, key string) *Client {
	t.Helper()
	c := New(key, time.UTC)
	c.BaseURL = testServer(t).URL
	return c
}

func TestFetchBundle(t *testing.T) {
	c := newTestClient(t, "test-key")

	b, err := c.FetchBundle(context.Background(), "London")
	if err != nil {
		t.Fatalf("FetchBundle: %v", err)
	}

	if b.Weather.Temp != 59 {
		t.Errorf("temp = %v, want rounded 59", b.Weather.Temp)
	}
	if b.Weather.FeelsLike != 55 {
		t.Errorf("feelsLike = %v, want 55", b.Weather.FeelsLike)
	}
	if b.Weather.Condition != "Rain" {
		t.Errorf("condition = %q", b.Weather.Condition)
	}
	if b.Weather.Icon != models.IconRainy {
		t.Errorf("icon = %q, want rainy", b.Weather.Icon)
	}
	if b.Weather.Location != "London, GB" {
		t.Errorf("location = %q", b.Weather.Location)
	}
	if b.Weather.Wind != "12 mph" {
		t.Errorf("wind = %q, want \"12 mph\"", b.Weather.Wind)
	}
	if b.Provider != "openweathermap" {
		t.Errorf("provider = %q", b.Provider)
	}
	if b.Unit != models.UnitFahrenheit {
		t.Errorf("unit = %q", b.Unit)
	}
}

func TestFetchBundleDailyAggregation(t *testing.T) {
	c := newTestClient(t, "test-key")

	b, err := c.FetchBundle(context.Background(), "London")
	if err != nil {
		t.Fatalf("FetchBundle: %v", err)
	}

	if len(b.Forecast) != 1 {
		t.Fatalf("forecast len = %d, want 1 calendar day", len(b.Forecast))
	}
	day := b.Forecast[0]
	if day.High != 66 {
		t.Errorf("high = %v, want max temp_max 66", day.High)
	}
	if day.Low != 47 {
		t.Errorf("low = %v, want min temp_min 47", day.Low)
	}
	if day.Day != "MON" {
		t.Errorf("day label = %q, want MON (2024-10-14)", day.Day)
	}
	if day.Condition != "Clouds" {
		t.Errorf("condition = %q", day.Condition)
	}
	if day.Icon != models.IconCloud {
		t.Errorf("icon = %q, want cloud", day.Icon)
	}
}

func TestFetchBundleHourlySlice(t *testing.T) {
	c := newTestClient(t, "test-key")

	b, err := c.FetchBundle(context.Background(), "London")
	if err != nil {
		t.Fatalf("FetchBundle: %v", err)
	}

	if len(b.Hourly) != 6 {
		t.Fatalf("hourly len = %d, want first 6 samples", len(b.Hourly))
	}
	if b.Hourly[0].Temp != 55 {
		t.Errorf("hourly[0].temp = %v, want 55", b.Hourly[0].Temp)
	}
	for _, h := range b.Hourly {
		if h.Icon != models.IconCloud {
			t.Errorf("hourly icon = %q, want cloud", h.Icon)
		}
	}
}

func TestFetchBundleMockPanchang(t *testing.T) {
	c := newTestClient(t, "test-key")

	b, err := c.FetchBundle(context.Background(), "London")
	if err != nil {
		t.Fatalf("FetchBundle: %v", err)
	}

	// This provider has no Panchang source; the static snapshot stands in.
	want := models.MockPanchang()
	if b.Panchang.Tithi != want.Tithi || len(b.Panchang.Rashifal) != len(want.Rashifal) {
		t.Errorf("panchang = %+v, want mock snapshot", b.Panchang)
	}
}

func TestFetchBundleNoKey(t *testing.T) {
	c := New("", time.UTC)
	if _, err := c.FetchBundle(context.Background(), "London"); err != ErrNoKey {
		t.Errorf("err = %v, want ErrNoKey", err)
	}
}

func TestCityForCoords(t *testing.T) {
	c := newTestClient(t, "test-key")

	city, err := c.CityForCoords(context.Background(), 51.5072, -0.1276)
	if err != nil {
		t.Fatalf("CityForCoords: %v", err)
	}
	if city != "London" {
		t.Errorf("city = %q, want London", city)
	}
}

func TestCityForCoordsNoKey(t *testing.T) {
	c := New("", time.UTC)
	if _, err := c.CityForCoords(context.Background(), 0, 0); err != ErrNoKey {
		t.Errorf("err = %v, want ErrNoKey", err)
	}
}

func TestFetchBundleAuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c := New("bad-key", time.UTC)
	c.BaseURL = srv.URL

	if _, err := c.FetchBundle(context.Background(), "London"); err == nil {
		t.Error("expected error on 401, got nil")
	}
}
