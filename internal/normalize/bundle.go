package normalize

import (
	"time"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

const maxForecastDays = 7

// Bundle maps a raw AI payload to a complete, renderable bundle. Every
// missing or invalid field takes a documented default; this function never
// fails. Temperatures are taken as Fahrenheit, per the prompt contract.
func Bundle(raw *RawBundle, query string, now time.Time) models.Bundle {
	out := models.Bundle{
		Unit:      models.UnitFahrenheit,
		Provider:  "ai",
		FetchedAt: now,
	}
	if raw == nil {
		raw = &RawBundle{}
	}

	out.Weather = weatherSnapshot(raw.Weather, query, now)
	out.Forecast = forecastDays(raw.Forecast)
	out.Hourly = hourlyPoints(raw.Hourly)
	out.Panchang = panchangSnapshot(raw.Panchang)
	return out
}

func weatherSnapshot(raw []byte, query string, now time.Time) models.WeatherSnapshot {
	def := models.DefaultWeather()
	w, _ := decodeObject[rawWeather](raw)

	condition := TitleCase(String(w.Condition, def.Condition))
	return models.WeatherSnapshot{
		Temp:      Float(w.Temp, def.Temp),
		FeelsLike: Float(w.FeelsLike, def.FeelsLike),
		Condition: condition,
		Wind:      String(w.Wind, def.Wind),
		Location:  String(w.Location, query),
		Icon:      iconFor(w.Icon, condition),
		Date:      now.Format("Monday, 2 Jan"),
		Time:      now.Format("03:04 PM"),
	}
}

func forecastDays(raw []byte) []models.ForecastDay {
	entries := decodeList[rawForecastDay](raw)
	if len(entries) == 0 {
		return models.MockForecast()
	}
	if len(entries) > maxForecastDays {
		entries = entries[:maxForecastDays]
	}

	out := make([]models.ForecastDay, 0, len(entries))
	for _, e := range entries {
		condition := TitleCase(String(e.Condition, "Cloudy"))
		out = append(out, models.ForecastDay{
			Day:       DayLabel(e.Day),
			Icon:      iconFor(e.Icon, condition),
			High:      Float(e.High, models.DefaultHigh),
			Low:       Float(e.Low, models.DefaultLow),
			Condition: condition,
		})
	}
	return out
}

func hourlyPoints(raw []byte) []models.HourlyPoint {
	entries := decodeList[rawHourlyPoint](raw)
	if len(entries) == 0 {
		return models.MockHourly()
	}

	out := make([]models.HourlyPoint, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.HourlyPoint{
			Time: String(e.Time, "---"),
			Icon: iconFor(e.Icon, e.Condition),
			Temp: Float(e.Temp, models.DefaultHourTemp),
		})
	}
	return out
}

func panchangSnapshot(raw []byte) models.PanchangSnapshot {
	def := models.MockPanchang()
	p, _ := decodeObject[rawPanchang](raw)

	out := models.PanchangSnapshot{
		Tithi:   String(p.Tithi, def.Tithi),
		Paksha:  String(p.Paksha, def.Paksha),
		Sunrise: String(p.Sunrise, def.Sunrise),
		Sunset:  String(p.Sunset, def.Sunset),
	}

	events := decodeList[rawEvent](p.UpcomingEvents)
	if len(events) == 0 {
		out.UpcomingEvents = def.UpcomingEvents
	} else {
		for _, e := range events {
			out.UpcomingEvents = append(out.UpcomingEvents, models.PanchangEvent{
				Date: String(e.Date, ""),
				Name: String(e.Name, ""),
				Type: EventType(e.Type),
			})
		}
	}

	rashifal := decodeList[rawRashifal](p.Rashifal)
	if len(rashifal) == 0 {
		out.Rashifal = def.Rashifal
	} else {
		for _, r := range rashifal {
			out.Rashifal = append(out.Rashifal, models.Rashifal{
				Sign:        String(r.Sign, ""),
				Prediction:  String(r.Prediction, ""),
				LuckyNumber: StringOrNumber(r.LuckyNumber, ""),
				LuckyColor:  String(r.LuckyColor, ""),
			})
		}
	}

	return out
}
