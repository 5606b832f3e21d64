package normalize

import (
	"math"
	"testing"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  float64
		want float64
	}{
		{"plain number", 59.5, 0, 59.5},
		{"integer-valued number", 72.0, 0, 72},
		{"numeric string", "59", 0, 59},
		{"string with unit suffix", "72.5°F", 0, 72.5},
		{"string with spaces", " 18 mph ", 0, 18},
		{"negative string", "-4", 0, -4},
		{"garbage string", "abc", 70, 70},
		{"empty string", "", 70, 70},
		{"nil", nil, 70, 70},
		{"bool", true, 70, 70},
		{"object", map[string]any{"x": 1}, 70, 70},
		{"NaN rejected", math.NaN(), 70, 70},
		{"infinity rejected", math.Inf(1), 70, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float(tt.in, tt.def)
			if got != tt.want {
				t.Errorf("Float(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Errorf("Float(%v) returned non-finite %v", tt.in, got)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := String("  London  ", "x"); got != "London" {
		t.Errorf("String trimmed = %q", got)
	}
	if got := String("", "def"); got != "def" {
		t.Errorf("empty string = %q, want default", got)
	}
	if got := String(nil, "def"); got != "def" {
		t.Errorf("nil = %q, want default", got)
	}
	if got := String(42.0, "def"); got != "def" {
		t.Errorf("number = %q, want default", got)
	}
}

func TestStringOrNumber(t *testing.T) {
	if got := StringOrNumber(9.0, ""); got != "9" {
		t.Errorf("StringOrNumber(9) = %q, want \"9\"", got)
	}
	if got := StringOrNumber("7", ""); got != "7" {
		t.Errorf("StringOrNumber(\"7\") = %q", got)
	}
	if got := StringOrNumber(nil, "5"); got != "5" {
		t.Errorf("StringOrNumber(nil) = %q, want default", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"light rain", "Light Rain"},
		{"LIGHT RAIN", "Light Rain"},
		{"partly cloudy", "Partly Cloudy"},
		{"Sun", "Sun"},
		{"", ""},
		{"  scattered   showers ", "Scattered Showers"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"Tuesday", "TUE"},
		{"fri", "FRI"},
		{"Mo", "MO"},
		{nil, "DAY"},
		{42.0, "DAY"},
	}
	for _, tt := range tests {
		if got := DayLabel(tt.in); got != tt.want {
			t.Errorf("DayLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventType(t *testing.T) {
	tests := []struct {
		in   any
		want models.EventType
	}{
		{"Festival", models.EventFestival},
		{"purnima", models.EventPurnima},
		{"AMAVASYA", models.EventAmavasya},
		{"Ekadashi", models.EventEkadashi},
		{"Auspicious", models.EventAuspicious},
		{"something else", models.EventOther},
		{nil, models.EventOther},
	}
	for _, tt := range tests {
		if got := EventType(tt.in); got != tt.want {
			t.Errorf("EventType(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want models.IconKey
	}{
		{"canonical passes through", "sunny", models.IconSunny},
		{"canonical rainy", "rainy", models.IconRainy},
		{"canonical partly cloudy", "partly_cloudy_day", models.IconPartlyCloudyDay},
		{"canonical snow", "cloudy_snowing", models.IconCloudySnowing},
		{"canonical bedtime", "bedtime", models.IconBedtime},
		{"upper case trimmed", "  SUNNY ", models.IconSunny},
		{"spaces become underscores", "light rain", models.IconRainy},
		{"synonym mostly_sunny", "mostly_sunny", models.IconSunny},
		{"synonym storm_icon", "storm_icon", models.IconThunderstorm},
		{"synonym drizzle", "drizzle", models.IconRainy},
		{"synonym freezing rain", "freezing rain", models.IconCloudySnowing},
		{"synonym mist", "mist", models.IconFoggy},
		{"synonym overcast", "overcast", models.IconCloud},
		{"synonym breezy", "breezy", models.IconAir},
		{"heuristic sun wins first", "bright sunshine", models.IconSunny},
		{"heuristic rain", "torrential raining", models.IconRainy},
		{"heuristic cloud", "scattered cloudiness", models.IconCloud},
		{"heuristic storm", "tropical storms ahead", models.IconThunderstorm},
		{"heuristic clear maps to sunny", "crystal clear", models.IconSunny},
		{"sun beats rain in priority", "sunny with rain later", models.IconSunny},
		{"unknown defaults to cloud", "xyzzy", models.IconCloud},
		{"empty defaults to cloud", "", models.IconCloud},
	}

	canonical := make(map[models.IconKey]bool)
	for _, k := range models.CanonicalIcons {
		canonical[k] = true
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Icon(tt.in)
			if got != tt.want {
				t.Errorf("Icon(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if !canonical[got] {
				t.Errorf("Icon(%q) = %q is outside the canonical vocabulary", tt.in, got)
			}
		})
	}
}

func TestIconNeverEmpty(t *testing.T) {
	inputs := []string{"", " ", "💀", "null", "undefined", "weather", "12345"}
	for _, in := range inputs {
		if got := Icon(in); got == "" {
			t.Errorf("Icon(%q) returned empty key", in)
		}
	}
}
