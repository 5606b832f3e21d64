package pipeline

import (
	"errors"
	"fmt"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/providers/ai"
)

// Kind classifies why a provider attempt failed. The fallback decision is
// the same for all of them; the distinction exists so callers can tell an
// operator-facing credential problem from routine model noise.
type Kind string

const (
	KindNoProvider Kind = "no_provider"
	KindQuota      Kind = "quota"
	KindMalformed  Kind = "malformed"
	KindTransport  Kind = "transport"
)

// FetchError is a classified provider failure.
type FetchError struct {
	Provider string
	Kind     Kind
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Provider, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func classifyPrimary(err error) *FetchError {
	fe := &FetchError{Provider: "ai", Err: err}
	switch {
	case errors.Is(err, ai.ErrQuota):
		fe.Kind = KindQuota
	case errors.Is(err, ai.ErrNoPayload):
		fe.Kind = KindMalformed
	default:
		fe.Kind = KindTransport
	}
	return fe
}
