// Package pipeline dispatches a weather query across the primary AI
// provider and the REST fallback. Fallback is an explicit branch on a
// classified result, not an exception handler: the primary is tried at
// most once, the fallback at most once, and a failure of both is the
// terminal error state.
package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/metrics"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/normalize"
)

// ErrNoProviders is returned when neither provider is configured.
var ErrNoProviders = errors.New("pipeline: no weather providers configured")

// PrimarySource is the search-grounded AI adapter.
type PrimarySource interface {
	SearchWeather(ctx context.Context, query string) (*normalize.RawBundle, []models.GroundingSource, error)
}

// FallbackSource is the conventional REST adapter. It also resolves
// coordinates, since geolocated lookups are defined in terms of it.
type FallbackSource interface {
	FetchBundle(ctx context.Context, city string) (*models.Bundle, error)
	CityForCoords(ctx context.Context, lat, lon float64) (string, error)
}

type Pipeline struct {
	primary  PrimarySource
	fallback FallbackSource
	now      func() time.Time
}

// New wires the pipeline. Either source may be nil (not configured); at
// least one must be present for fetches to succeed.
func New(primary PrimarySource, fallback FallbackSource, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{primary: primary, fallback: fallback, now: now}
}

// FetchCity produces a complete bundle for a city name: one primary
// attempt, then one fallback attempt. The returned bundle is always fully
// populated (the normalizer and the fallback's mock Panchang guarantee
// that); a nil bundle means both providers failed and the caller should
// surface the error.
func (p *Pipeline) FetchCity(ctx context.Context, city string) (*models.Bundle, error) {
	if p.primary == nil && p.fallback == nil {
		return nil, ErrNoProviders
	}

	var primaryErr error
	if p.primary != nil {
		raw, sources, err := p.primary.SearchWeather(ctx, city)
		if err == nil {
			bundle := normalize.Bundle(raw, city, p.now())
			bundle.Weather.Sources = sources
			return &bundle, nil
		}
		fe := classifyPrimary(err)
		metrics.FallbacksTotal.WithLabelValues(string(fe.Kind)).Inc()
		log.Printf("primary provider failed for %q, using fallback: %v", city, fe)
		primaryErr = fe
	} else {
		metrics.FallbacksTotal.WithLabelValues(string(KindNoProvider)).Inc()
		primaryErr = &FetchError{Provider: "ai", Kind: KindNoProvider, Err: errors.New("not configured")}
	}

	if p.fallback == nil {
		return nil, primaryErr
	}

	bundle, err := p.fallback.FetchBundle(ctx, city)
	if err != nil {
		return nil, multierror.Append(primaryErr, err)
	}
	return bundle, nil
}

// FetchCoords resolves coordinates to a city through the fallback
// provider, then runs the normal city fetch (so the primary provider still
// gets first shot at the resolved name).
func (p *Pipeline) FetchCoords(ctx context.Context, lat, lon float64) (*models.Bundle, error) {
	if p.fallback == nil {
		return nil, ErrNoProviders
	}
	city, err := p.fallback.CityForCoords(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	return p.FetchCity(ctx, city)
}
