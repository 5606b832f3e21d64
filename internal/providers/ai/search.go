package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/extract"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/metrics"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/normalize"
)

// SearchWeather submits the search-grounded prompt and returns the raw
// payload plus any grounding citations. Errors are classified: quota/auth
// rejections wrap ErrQuota, an unparseable response wraps ErrNoPayload, and
// everything else is a transport failure. All of them route the caller to
// the fallback provider.
func (c *Client) SearchWeather(ctx context.Context, query string) (*normalize.RawBundle, []models.GroundingSource, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	timer := metrics.ObserveProviderLatency("ai")
	defer timer.ObserveDuration()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.client.Responses.New(ctx, responses.ResponseNewParams{
			Model: shared.ResponsesModel(c.model),
			Input: responses.ResponseNewParamsInputUnion{OfString: openai.String(buildSearchPrompt(query))},
			Tools: []responses.ToolUnionParam{{
				OfWebSearch: &responses.WebSearchToolParam{Type: responses.WebSearchToolTypeWebSearch},
			}},
		})
	})
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("ai", "error").Inc()
		return nil, nil, classify(fmt.Errorf("search weather for %q: %w", query, err))
	}

	resp := result.(*responses.Response)
	text := resp.OutputText()

	span, ok := extract.Object(text)
	if !ok {
		metrics.ProviderCallsTotal.WithLabelValues("ai", "malformed").Inc()
		return nil, nil, fmt.Errorf("search weather for %q: %w", query, ErrNoPayload)
	}

	raw, err := normalize.ParseRawBundle(span)
	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues("ai", "malformed").Inc()
		return nil, nil, fmt.Errorf("search weather for %q: %w: %v", query, ErrNoPayload, err)
	}

	metrics.ProviderCallsTotal.WithLabelValues("ai", "ok").Inc()
	return raw, groundingSources(resp), nil
}

// groundingSources collects url_citation annotations from the response
// output; they become the snapshot's sources list.
func groundingSources(resp *responses.Response) []models.GroundingSource {
	var sources []models.GroundingSource
	seen := make(map[string]bool)

	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type != "output_text" {
				continue
			}
			for _, ann := range part.Annotations {
				if ann.Type != "url_citation" || ann.URL == "" || seen[ann.URL] {
					continue
				}
				seen[ann.URL] = true
				sources = append(sources, models.GroundingSource{
					Title: ann.Title,
					URI:   ann.URL,
				})
			}
		}
	}
	return sources
}

// CitySuggestions returns up to 5 "City, Country" completions for a
// partial input. Failures and short inputs yield an empty list; callers
// never branch on an error from typeahead.
func (c *Client) CitySuggestions(ctx context.Context, partial string) []string {
	if len(partial) < 2 {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil
	}

	metrics.SuggestionCallsTotal.Inc()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildSuggestPrompt(partial)),
		},
	})
	if err != nil {
		log.Printf("city suggestions for %q failed: %v", partial, err)
		return nil
	}
	if len(resp.Choices) == 0 {
		return nil
	}

	span, ok := extract.Array(resp.Choices[0].Message.Content)
	if !ok {
		return nil
	}
	var cities []string
	if err := json.Unmarshal(span, &cities); err != nil {
		return nil
	}
	if len(cities) > 5 {
		cities = cities[:5]
	}
	return cities
}
