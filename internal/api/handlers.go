package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// displayUnit selects the unit for a response; bundles are stored in
// Fahrenheit and converted at the edge.
func displayUnit(r *http.Request) models.Unit {
	if strings.EqualFold(r.URL.Query().Get("unit"), "c") {
		return models.UnitCelsius
	}
	return models.UnitFahrenheit
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleWeather serves a fresh bundle for ?city= or ?lat=&lon=. A failure
// of both providers is the one user-visible error in the pipeline.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	city := strings.TrimSpace(q.Get("city"))
	latStr, lonStr := q.Get("lat"), q.Get("lon")

	var bundle *models.Bundle
	var err error

	switch {
	case city != "":
		bundle, err = s.fetcher.FetchCity(r.Context(), city)
	case latStr != "" && lonStr != "":
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			writeError(w, http.StatusBadRequest, "invalid lat/lon")
			return
		}
		bundle, err = s.fetcher.FetchCoords(r.Context(), lat, lon)
	default:
		writeError(w, http.StatusBadRequest, "city or lat/lon required")
		return
	}

	if err != nil {
		writeError(w, http.StatusBadGateway, "weather lookup failed: "+err.Error())
		return
	}

	writeJSON(w, bundle.Converted(displayUnit(r)))
}

// handleCurrent serves the cached default-city bundle from the holder.
func (s *Server) handleCurrent(w http.ResponseWriter, r *http.Request) {
	bundle := s.holder.Current()
	writeJSON(w, bundle.Converted(displayUnit(r)))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if s.suggester == nil || len(q) < 2 {
		writeJSON(w, []string{})
		return
	}
	cities := s.suggester.CitySuggestions(r.Context(), q)
	if cities == nil {
		cities = []string{}
	}
	writeJSON(w, cities)
}

func (s *Server) handleInsight(w http.ResponseWriter, r *http.Request) {
	condition := strings.TrimSpace(r.URL.Query().Get("condition"))
	if condition == "" {
		condition = s.holder.Current().Weather.Condition
	}
	if s.insights == nil {
		writeJSON(w, models.DefaultInsight())
		return
	}
	insight := s.insights.Generate(r.Context(), condition)
	s.holder.SetInsight(insight)
	writeJSON(w, insight)
}
