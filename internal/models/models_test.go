package models

import "testing"

func TestFToC(t *testing.T) {
	tests := []struct {
		f    float64
		want float64
	}{
		{72, 22},
		{32, 0},
		{212, 100},
		{0, -18},
		{59, 15},
	}

	for _, tt := range tests {
		if got := FToC(tt.f); got != tt.want {
			t.Errorf("FToC(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestCToF(t *testing.T) {
	tests := []struct {
		c    float64
		want float64
	}{
		{22, 72},
		{0, 32},
		{100, 212},
	}

	for _, tt := range tests {
		if got := CToF(tt.c); got != tt.want {
			t.Errorf("CToF(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBundleConverted(t *testing.T) {
	b := DefaultBundle()

	c := b.Converted(UnitCelsius)
	if c.Unit != UnitCelsius {
		t.Fatalf("unit = %q, want %q", c.Unit, UnitCelsius)
	}
	if c.Weather.Temp != 22 {
		t.Errorf("temp = %v, want 22", c.Weather.Temp)
	}
	if c.Weather.FeelsLike != 20 {
		t.Errorf("feelsLike = %v, want 20", c.Weather.FeelsLike)
	}
	if c.Forecast[0].High != 22 || c.Forecast[0].Low != 18 {
		t.Errorf("forecast[0] = %v/%v, want 22/18", c.Forecast[0].High, c.Forecast[0].Low)
	}
	if c.Hourly[0].Temp != 22 {
		t.Errorf("hourly[0].temp = %v, want 22", c.Hourly[0].Temp)
	}

	// Original bundle must be untouched.
	if b.Weather.Temp != 72 || b.Forecast[0].High != 72 {
		t.Error("Converted mutated the source bundle")
	}
}

func TestBundleConvertedSameUnit(t *testing.T) {
	b := DefaultBundle()
	f := b.Converted(UnitFahrenheit)
	if f.Weather.Temp != b.Weather.Temp {
		t.Errorf("same-unit conversion changed temp: %v != %v", f.Weather.Temp, b.Weather.Temp)
	}
	f.Forecast[0].High = -999
	if b.Forecast[0].High == -999 {
		t.Error("Converted shares forecast slice with source")
	}
}

func TestMockDataShape(t *testing.T) {
	if len(MockForecast()) != 7 {
		t.Errorf("mock forecast has %d days, want 7", len(MockForecast()))
	}
	p := MockPanchang()
	if len(p.Rashifal) < 6 || len(p.Rashifal) > 12 {
		t.Errorf("mock rashifal has %d entries, want 6-12", len(p.Rashifal))
	}
	if len(p.UpcomingEvents) == 0 {
		t.Error("mock panchang has no upcoming events")
	}
	for _, d := range MockForecast() {
		if len(d.Day) != 3 {
			t.Errorf("day label %q is not 3 letters", d.Day)
		}
	}
}
