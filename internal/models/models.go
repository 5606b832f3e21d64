package models

import (
	"math"
	"time"
)

// Unit is the temperature unit a bundle is expressed in.
type Unit string

const (
	UnitFahrenheit Unit = "F"
	UnitCelsius    Unit = "C"
)

// IconKey is one of a closed set of glyph identifiers. Provider strings are
// mapped into this vocabulary before anything reaches a consumer.
type IconKey string

const (
	IconSunny           IconKey = "sunny"
	IconRainy           IconKey = "rainy"
	IconCloud           IconKey = "cloud"
	IconThunderstorm    IconKey = "thunderstorm"
	IconPartlyCloudyDay IconKey = "partly_cloudy_day"
	IconCloudySnowing   IconKey = "cloudy_snowing"
	IconFoggy           IconKey = "foggy"
	IconBedtime         IconKey = "bedtime"
	IconAir             IconKey = "air"
)

// CanonicalIcons is the full icon vocabulary.
var CanonicalIcons = []IconKey{
	IconSunny, IconRainy, IconCloud, IconThunderstorm, IconPartlyCloudyDay,
	IconCloudySnowing, IconFoggy, IconBedtime, IconAir,
}

// GroundingSource is a citation attached by a search-grounded response.
type GroundingSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// WeatherSnapshot is the current conditions for one location.
// Temperatures are in the unit recorded on the enclosing Bundle.
type WeatherSnapshot struct {
	Temp      float64           `json:"temp"`
	FeelsLike float64           `json:"feelsLike"`
	Condition string            `json:"condition"`
	Wind      string            `json:"wind"`
	Location  string            `json:"location"`
	Icon      IconKey           `json:"icon"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Sources   []GroundingSource `json:"sources,omitempty"`
}

// ForecastDay is one daily entry, ordered from today forward.
type ForecastDay struct {
	Day       string  `json:"day"`
	Icon      IconKey `json:"icon"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Condition string  `json:"condition"`
}

// HourlyPoint is one short-horizon temperature sample anchored at "now".
type HourlyPoint struct {
	Time string  `json:"time"`
	Icon IconKey `json:"icon"`
	Temp float64 `json:"temp"`
}

// EventType classifies an upcoming Panchang event.
type EventType string

const (
	EventFestival   EventType = "Festival"
	EventPurnima    EventType = "Purnima"
	EventAmavasya   EventType = "Amavasya"
	EventEkadashi   EventType = "Ekadashi"
	EventAuspicious EventType = "Auspicious"
	EventOther      EventType = "Other"
)

// PanchangEvent is one upcoming calendrical event.
type PanchangEvent struct {
	Date string    `json:"date"`
	Name string    `json:"name"`
	Type EventType `json:"type"`
}

// Rashifal is a daily horoscope entry for one zodiac sign.
type Rashifal struct {
	Sign        string `json:"sign"`
	Prediction  string `json:"prediction"`
	LuckyNumber string `json:"luckyNumber"`
	LuckyColor  string `json:"luckyColor"`
}

// PanchangSnapshot is the Vedic almanac data for one day.
type PanchangSnapshot struct {
	Tithi          string          `json:"tithi"`
	Paksha         string          `json:"paksha"`
	Sunrise        string          `json:"sunrise"`
	Sunset         string          `json:"sunset"`
	UpcomingEvents []PanchangEvent `json:"upcomingEvents"`
	Rashifal       []Rashifal      `json:"rashifal"`
}

// Insight is a short motivational quote with its citation. It has an
// independent lifecycle from the weather bundle and a static fallback.
type Insight struct {
	Quote   string `json:"quote"`
	Meaning string `json:"meaning"`
}

// Bundle is everything one successful fetch cycle produces. A bundle is
// created atomically and replaces its predecessor wholesale; consumers never
// see a forecast that is stale relative to the snapshot it shipped with.
type Bundle struct {
	Weather   WeatherSnapshot  `json:"weather"`
	Forecast  []ForecastDay    `json:"forecast"`
	Hourly    []HourlyPoint    `json:"hourly"`
	Panchang  PanchangSnapshot `json:"panchang"`
	Unit      Unit             `json:"unit"`
	Provider  string           `json:"provider"`
	FetchedAt time.Time        `json:"fetchedAt"`
}

// FToC converts a Fahrenheit temperature to rounded Celsius.
func FToC(f float64) float64 {
	return math.Round((f - 32) * 5 / 9)
}

// CToF converts a Celsius temperature to rounded Fahrenheit.
func CToF(c float64) float64 {
	return math.Round(c*9/5 + 32)
}

// Converted returns a copy of the bundle with every temperature expressed in
// the requested unit. Bundles are produced in Fahrenheit; converting to the
// current unit is a plain copy.
func (b Bundle) Converted(to Unit) Bundle {
	if b.Unit == "" {
		b.Unit = UnitFahrenheit
	}
	if to == b.Unit {
		return b.clone()
	}

	conv := FToC
	if to == UnitFahrenheit {
		conv = CToF
	}

	out := b.clone()
	out.Unit = to
	out.Weather.Temp = conv(b.Weather.Temp)
	out.Weather.FeelsLike = conv(b.Weather.FeelsLike)
	for i, d := range b.Forecast {
		out.Forecast[i].High = conv(d.High)
		out.Forecast[i].Low = conv(d.Low)
	}
	for i, h := range b.Hourly {
		out.Hourly[i].Temp = conv(h.Temp)
	}
	return out
}

func (b Bundle) clone() Bundle {
	out := b
	out.Forecast = append([]ForecastDay(nil), b.Forecast...)
	out.Hourly = append([]HourlyPoint(nil), b.Hourly...)
	out.Panchang.UpcomingEvents = append([]PanchangEvent(nil), b.Panchang.UpcomingEvents...)
	out.Panchang.Rashifal = append([]Rashifal(nil), b.Panchang.Rashifal...)
	out.Weather.Sources = append([]GroundingSource(nil), b.Weather.Sources...)
	return out
}
