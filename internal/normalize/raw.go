package normalize

import "encoding/json"

// Raw payload types for the AI provider's JSON. Scalar fields are `any`
// because the model freely returns numbers as strings and vice versa; list
// fields are RawMessage so a non-array value degrades to the mock list
// instead of failing the whole parse. No code outside this package reads a
// raw field directly.

// RawBundle mirrors the JSON shape requested in the search prompt.
type RawBundle struct {
	Weather  json.RawMessage `json:"weather"`
	Forecast json.RawMessage `json:"forecast"`
	Hourly   json.RawMessage `json:"hourly"`
	Panchang json.RawMessage `json:"panchang"`
}

type rawWeather struct {
	Temp      any `json:"temp"`
	FeelsLike any `json:"feelsLike"`
	Condition any `json:"condition"`
	Wind      any `json:"wind"`
	Location  any `json:"location"`
	Icon      any `json:"icon"`
}

type rawForecastDay struct {
	Day       any `json:"day"`
	High      any `json:"high"`
	Low       any `json:"low"`
	Condition any `json:"condition"`
	Icon      any `json:"icon"`
}

type rawHourlyPoint struct {
	Time      any `json:"time"`
	Temp      any `json:"temp"`
	Condition any `json:"condition"`
	Icon      any `json:"icon"`
}

type rawPanchang struct {
	Tithi          any             `json:"tithi"`
	Paksha         any             `json:"paksha"`
	Sunrise        any             `json:"sunrise"`
	Sunset         any             `json:"sunset"`
	UpcomingEvents json.RawMessage `json:"upcomingEvents"`
	Rashifal       json.RawMessage `json:"rashifal"`
}

type rawEvent struct {
	Date any `json:"date"`
	Name any `json:"name"`
	Type any `json:"type"`
}

type rawRashifal struct {
	Sign        any `json:"sign"`
	Prediction  any `json:"prediction"`
	LuckyNumber any `json:"luckyNumber"`
	LuckyColor  any `json:"luckyColor"`
}

// ParseRawBundle decodes an extracted JSON object into a RawBundle.
func ParseRawBundle(raw json.RawMessage) (*RawBundle, error) {
	var rb RawBundle
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil, err
	}
	return &rb, nil
}

// decodeObject decodes raw into T, returning ok=false when the field is
// absent or not an object of the expected shape.
func decodeObject[T any](raw json.RawMessage) (T, bool) {
	var out T
	if len(raw) == 0 {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// decodeList decodes raw into a slice of T; anything that is not an array
// of the expected shape yields nil.
func decodeList[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
