package models

import "time"

// Defaults used whenever a provider omits or garbles a field, and to seed
// the state holder before the first live fetch. Functions return fresh
// copies so callers can never mutate shared slices.

const (
	DefaultTemp     = 72.0
	DefaultHigh     = 70.0
	DefaultLow      = 60.0
	DefaultHourTemp = 70.0
)

// DefaultWeather is the boot-time current-conditions placeholder.
func DefaultWeather() WeatherSnapshot {
	return WeatherSnapshot{
		Temp:      72,
		FeelsLike: 68,
		Condition: "Heavy Rain",
		Wind:      "8 mph",
		Location:  "San Francisco",
		Icon:      IconRainy,
		Date:      "Monday, 14 Oct",
		Time:      "10:23 AM",
	}
}

// MockForecast is the 7-day placeholder used when a provider returns no
// usable forecast list.
func MockForecast() []ForecastDay {
	return []ForecastDay{
		{Day: "TOD", Icon: IconRainy, High: 72, Low: 65, Condition: "Rain"},
		{Day: "TUE", Icon: IconSunny, High: 75, Low: 62, Condition: "Sun"},
		{Day: "WED", Icon: IconPartlyCloudyDay, High: 70, Low: 60, Condition: "Partly Cloudy"},
		{Day: "THU", Icon: IconCloud, High: 68, Low: 58, Condition: "Overcast"},
		{Day: "FRI", Icon: IconThunderstorm, High: 65, Low: 55, Condition: "Storm"},
		{Day: "SAT", Icon: IconSunny, High: 78, Low: 64, Condition: "Sun"},
		{Day: "SUN", Icon: IconSunny, High: 80, Low: 66, Condition: "Sun"},
	}
}

// MockHourly is the short placeholder hourly strip.
func MockHourly() []HourlyPoint {
	return []HourlyPoint{
		{Time: "Now", Icon: IconThunderstorm, Temp: 72},
		{Time: "11 AM", Icon: IconRainy, Temp: 70},
		{Time: "12 PM", Icon: IconCloud, Temp: 69},
		{Time: "1 PM", Icon: IconPartlyCloudyDay, Temp: 71},
		{Time: "2 PM", Icon: IconSunny, Temp: 74},
		{Time: "3 PM", Icon: IconSunny, Temp: 75},
	}
}

// MockPanchang is the Vedic almanac placeholder. The REST fallback has no
// Panchang source at all, so this is what it always ships.
func MockPanchang() PanchangSnapshot {
	return PanchangSnapshot{
		Tithi:   "Ekadashi",
		Paksha:  "Shukla Paksha",
		Sunrise: "06:34 AM",
		Sunset:  "06:12 PM",
		UpcomingEvents: []PanchangEvent{
			{Date: "Mar 25", Name: "Papmochani Ekadashi", Type: EventEkadashi},
			{Date: "Apr 06", Name: "Purnima Vrat", Type: EventPurnima},
			{Date: "Apr 14", Name: "Baisakhi", Type: EventFestival},
			{Date: "Apr 20", Name: "Amavasya", Type: EventAmavasya},
		},
		Rashifal: []Rashifal{
			{
				Sign:        "Mesh (Aries)",
				Prediction:  "A powerful alignment of Mars suggests a day for bold career moves. Your energy will be contagious, leading to a breakthrough in a stalled project. Stay hydrated and avoid minor arguments.",
				LuckyNumber: "9",
				LuckyColor:  "Red",
			},
			{
				Sign:        "Vrishabh (Taurus)",
				Prediction:  "Venus brings a wave of harmony to your personal relationships. It's an excellent time for financial planning and stable investments. A surprise gift from a loved one might brighten your evening.",
				LuckyNumber: "6",
				LuckyColor:  "White",
			},
			{
				Sign:        "Mithun (Gemini)",
				Prediction:  "Communication is your greatest tool today. Expect a phone call that opens new doors for travel or higher education. Keep your focus steady and don't let distractions ruin your productivity.",
				LuckyNumber: "5",
				LuckyColor:  "Green",
			},
			{
				Sign:        "Kark (Cancer)",
				Prediction:  "The Moon's influence encourages emotional depth and intuition. Trust your gut feeling when dealing with family matters. A peaceful evening spent at home will rejuvenate your spirit for the week ahead.",
				LuckyNumber: "2",
				LuckyColor:  "Silver",
			},
			{
				Sign:        "Simha (Leo)",
				Prediction:  "Your natural charisma is at an all-time high today. Solar energy supports creative pursuits and public speaking. Lead with confidence, but ensure you listen to the needs of your team members.",
				LuckyNumber: "1",
				LuckyColor:  "Gold",
			},
			{
				Sign:        "Kanya (Virgo)",
				Prediction:  "Meticulous planning pays off in unexpected ways. Mercury sharpens your analytical mind, helping you solve complex puzzles. Take a small break to walk in nature to maintain your mental clarity.",
				LuckyNumber: "4",
				LuckyColor:  "Blue",
			},
		},
	}
}

// DefaultInsight never fails to exist; insight generation falling over must
// not degrade anything else.
func DefaultInsight() Insight {
	return Insight{
		Quote:   "You have a right to perform your prescribed duties, but you are not entitled to the fruits of your actions.",
		Meaning: "Bhagavad Gita 2.47",
	}
}

// DefaultBundle seeds the state holder before the first successful fetch.
func DefaultBundle() Bundle {
	return Bundle{
		Weather:   DefaultWeather(),
		Forecast:  MockForecast(),
		Hourly:    MockHourly(),
		Panchang:  MockPanchang(),
		Unit:      UnitFahrenheit,
		Provider:  "static",
		FetchedAt: time.Time{},
	}
}
