package ai

import "fmt"

// buildSearchPrompt asks for live, search-grounded weather and Panchang
// data in a fixed JSON shape. The Fahrenheit instruction is a prompt-level
// contract: the model is told to convert Celsius sources itself, and the
// normalizer downstream assumes imperial values.
func buildSearchPrompt(query string) string {
	return fmt.Sprintf(`Perform a web search for LIVE weather and Vedic Panchang for %q.
Units: Fahrenheit. Convert any Celsius values to Fahrenheit before answering.
Strictly return ONLY JSON in this structure:
{
  "weather": { "temp": number, "feelsLike": number, "condition": "string", "wind": "string", "location": "string" },
  "forecast": [ { "day": "3-LETTER-ABBREVIATION", "high": number, "low": number, "condition": "string" } ],
  "hourly": [ { "time": "string", "temp": number, "condition": "string" } ],
  "panchang": {
    "tithi": "string",
    "paksha": "string",
    "sunrise": "string",
    "sunset": "string",
    "upcomingEvents": [{"date": "MMM DD", "name": "string", "type": "Festival|Purnima|Amavasya|Ekadashi|Auspicious|Other"}],
    "rashifal": [{"sign": "string", "prediction": "string", "luckyNumber": "string", "luckyColor": "string"}]
  }
}`, query)
}

// buildSuggestPrompt asks for city-name completions as a bare JSON array.
func buildSuggestPrompt(partial string) string {
	return fmt.Sprintf(`Search for 5 major world cities starting with %q. Return ONLY a JSON array of strings: ["City, Country"].`, partial)
}
