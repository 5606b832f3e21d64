// Package refresh keeps the default-city bundle warm with a periodic
// re-fetch, the server-side stand-in for the original UI's timed refresh.
package refresh

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/state"
)

// Fetcher is the slice of the pipeline the refresher needs.
type Fetcher interface {
	FetchCity(ctx context.Context, city string) (*models.Bundle, error)
}

// Insighter regenerates the quote alongside the bundle. Failures inside it
// already degrade to the static default.
type Insighter interface {
	Generate(ctx context.Context, condition string) models.Insight
}

type Refresher struct {
	scheduler *gocron.Scheduler
	fetcher   Fetcher
	insights  Insighter
	holder    *state.Holder
	city      string
	interval  time.Duration
}

func New(fetcher Fetcher, insights Insighter, holder *state.Holder, city string, interval time.Duration) *Refresher {
	return &Refresher{
		scheduler: gocron.NewScheduler(time.UTC),
		fetcher:   fetcher,
		insights:  insights,
		holder:    holder,
		city:      city,
		interval:  interval,
	}
}

// Start runs one refresh immediately, then schedules the periodic job.
func (r *Refresher) Start() error {
	if r.city == "" {
		log.Println("refresh: no default city configured; nothing to schedule")
		return nil
	}

	r.RefreshOnce()

	minutes := int(r.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	if _, err := r.scheduler.Every(minutes).Minutes().Do(r.RefreshOnce); err != nil {
		return err
	}
	r.scheduler.StartAsync()
	return nil
}

// RefreshOnce fetches the default city and swaps the holder's bundle
// wholesale. A failed fetch leaves the previous bundle in place.
func (r *Refresher) RefreshOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	bundle, err := r.fetcher.FetchCity(ctx, r.city)
	if err != nil {
		log.Printf("refresh: fetch failed for %q, keeping previous bundle: %v", r.city, err)
		return
	}
	r.holder.Replace(*bundle)

	if r.insights != nil {
		r.holder.SetInsight(r.insights.Generate(ctx, bundle.Weather.Condition))
	}
	log.Printf("refresh: bundle for %q updated via %s", r.city, bundle.Provider)
}

// Stop cancels future jobs.
func (r *Refresher) Stop() {
	if r.scheduler != nil {
		r.scheduler.Stop()
	}
}
