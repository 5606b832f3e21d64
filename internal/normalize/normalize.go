// Package normalize coerces loosely-typed provider payloads into the
// canonical data model. Garbled or missing fields default rather than
// error: partial AI output is the common case here, not an exception.
package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

// Float coerces v to a finite float64. Numbers pass through (NaN and
// infinities are rejected), numeric strings are stripped of everything but
// digits, '.' and '-' before parsing, anything else yields def.
func Float(v any, def float64) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return def
		}
		return n
	case float32:
		return Float(float64(n), def)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := stripNonNumeric(n)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return def
		}
		return f
	default:
		return def
	}
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// String coerces v to a non-empty trimmed string, or def.
func String(v any, def string) string {
	s, ok := v.(string)
	if !ok {
		return def
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// StringOrNumber coerces v to a string, rendering bare numbers as text so a
// provider returning `"luckyNumber": 9` still yields "9".
func StringOrNumber(v any, def string) string {
	if s := String(v, ""); s != "" {
		return s
	}
	if n, ok := v.(float64); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return def
}

// TitleCase capitalizes the first letter of each space-separated word and
// lowercases the rest, so "light RAIN" and "light rain" render identically.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

// DayLabel coerces v to a 3-letter upper-case day code.
func DayLabel(v any) string {
	s := String(v, "DAY")
	if len(s) > 3 {
		s = s[:3]
	}
	return strings.ToUpper(s)
}

// EventType maps a free-form event type string into the closed event
// vocabulary, defaulting to Other.
func EventType(v any) models.EventType {
	switch strings.ToLower(String(v, "")) {
	case "festival":
		return models.EventFestival
	case "purnima":
		return models.EventPurnima
	case "amavasya":
		return models.EventAmavasya
	case "ekadashi":
		return models.EventEkadashi
	case "auspicious":
		return models.EventAuspicious
	default:
		return models.EventOther
	}
}

// iconSynonyms maps cleaned provider icon/condition tokens straight to a
// canonical key. Canonical keys map to themselves so normalization is
// idempotent.
var iconSynonyms = map[string]models.IconKey{
	"sunny":             models.IconSunny,
	"rainy":             models.IconRainy,
	"cloud":             models.IconCloud,
	"thunderstorm":      models.IconThunderstorm,
	"partly_cloudy_day": models.IconPartlyCloudyDay,
	"cloudy_snowing":    models.IconCloudySnowing,
	"foggy":             models.IconFoggy,
	"bedtime":           models.IconBedtime,
	"air":               models.IconAir,

	"mostly_sunny":   models.IconSunny,
	"clear_sky":      models.IconSunny,
	"storm_icon":     models.IconThunderstorm,
	"thunder":        models.IconThunderstorm,
	"light_rain":     models.IconRainy,
	"heavy_rain":     models.IconRainy,
	"drizzle":        models.IconRainy,
	"shower":         models.IconRainy,
	"showers":        models.IconRainy,
	"snow":           models.IconCloudySnowing,
	"snowing":        models.IconCloudySnowing,
	"sleet":          models.IconCloudySnowing,
	"ice":            models.IconCloudySnowing,
	"freezing_rain":  models.IconCloudySnowing,
	"fog":            models.IconFoggy,
	"mist":           models.IconFoggy,
	"haze":           models.IconFoggy,
	"partly_cloudy":  models.IconPartlyCloudyDay,
	"clouds":         models.IconCloud,
	"cloudy":         models.IconCloud,
	"overcast":       models.IconCloud,
	"wind":           models.IconAir,
	"windy":          models.IconAir,
	"breezy":         models.IconAir,
	"clear_night":    models.IconBedtime,
	"night":          models.IconBedtime,
	"mostly_cloudy":  models.IconCloud,
	"scattered_rain": models.IconRainy,
}

// iconHeuristics are substring fallbacks applied in fixed priority order;
// first match wins.
var iconHeuristics = []struct {
	substr string
	key    models.IconKey
}{
	{"sun", models.IconSunny},
	{"rain", models.IconRainy},
	{"cloud", models.IconCloud},
	{"storm", models.IconThunderstorm},
	{"clear", models.IconSunny},
}

// Icon maps an arbitrary provider icon or condition string into the
// canonical icon vocabulary. It never passes a raw string through and never
// returns empty: unmatched input defaults to the cloud glyph.
func Icon(raw string) models.IconKey {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Join(strings.Fields(cleaned), "_")

	if key, ok := iconSynonyms[cleaned]; ok {
		return key
	}
	for _, h := range iconHeuristics {
		if strings.Contains(cleaned, h.substr) {
			return h.key
		}
	}
	return models.IconCloud
}

// iconFor picks the icon for an entry: an explicit icon field wins,
// otherwise the condition string drives the mapping.
func iconFor(icon, condition any) models.IconKey {
	if s := String(icon, ""); s != "" {
		return Icon(s)
	}
	return Icon(String(condition, ""))
}
