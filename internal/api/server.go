// Package api exposes the fetch pipeline over a small JSON API. All
// rendering lives in clients; this layer only validates parameters,
// selects the display unit, and encodes bundles.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/state"
)

// Fetcher is the pipeline surface the handlers use.
type Fetcher interface {
	FetchCity(ctx context.Context, city string) (*models.Bundle, error)
	FetchCoords(ctx context.Context, lat, lon float64) (*models.Bundle, error)
}

// Suggester provides city-name completions; nil disables the endpoint.
type Suggester interface {
	CitySuggestions(ctx context.Context, partial string) []string
}

// Insighter produces quotes; nil serves the static default.
type Insighter interface {
	Generate(ctx context.Context, condition string) models.Insight
}

type Server struct {
	fetcher   Fetcher
	suggester Suggester
	insights  Insighter
	holder    *state.Holder
	port      string
}

func NewServer(fetcher Fetcher, suggester Suggester, insights Insighter, holder *state.Holder, port string) *Server {
	return &Server{
		fetcher:   fetcher,
		suggester: suggester,
		insights:  insights,
		holder:    holder,
		port:      port,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/weather", s.handleWeather)
	mux.HandleFunc("/api/current", s.handleCurrent)
	mux.HandleFunc("/api/suggest", s.handleSuggest)
	mux.HandleFunc("/api/insight", s.handleInsight)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
