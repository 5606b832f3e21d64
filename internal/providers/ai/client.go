// Package ai is the primary provider adapter: a search-grounded generative
// model asked to return live weather and Panchang data as JSON embedded in
// free-form text.
package ai

import (
	"errors"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const DefaultModel = "gpt-4o-mini"

// ErrNoKey is returned by New when no credential is configured. Callers
// treat a missing client as "no primary provider" and go straight to the
// fallback; no network call is ever attempted without a key.
var ErrNoKey = errors.New("ai: api key not configured")

// ErrQuota marks auth and quota rejections (401/403/429). The pipeline
// distinguishes these from parse failures so the operator can be told the
// credential is the problem, though both trigger the fallback.
var ErrQuota = errors.New("ai: quota or auth rejection")

// ErrNoPayload marks a response that contained no parseable JSON object.
var ErrNoPayload = errors.New("ai: no json payload in response")

// Client wraps the model API with a circuit breaker on the search call and
// a rate limiter on suggestion calls (those fire per keystroke upstream).
type Client struct {
	client  openai.Client
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// New builds a Client. The key is injected here; nothing reads ambient
// configuration at call time.
func New(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoKey
	}
	if model == "" {
		model = DefaultModel
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "ai-search",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		client:  openai.NewClient(option.WithAPIKey(apiKey)),
		model:   model,
		timeout: 60 * time.Second,
		breaker: cb,
		limiter: rate.NewLimiter(rate.Limit(2), 5),
	}, nil
}

// classify wraps provider errors so the pipeline can branch on kind.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case 401, 403, 429:
			return errors.Join(ErrQuota, err)
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrQuota, err)
	}
	return err
}
