// Package insight produces a short motivational quote for the current
// conditions. It is decoupled from the weather pipeline: one attempt, no
// retries, and any failure at all returns the static default so a broken
// quote generator can never degrade weather delivery.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/extract"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/metrics"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

type Generator struct {
	client  openai.Client
	model   string
	timeout time.Duration
	enabled bool
}

// New builds a Generator. An empty key yields a disabled generator that
// always returns the default insight; construction never fails.
func New(apiKey, model string) *Generator {
	g := &Generator{
		model:   model,
		timeout: 30 * time.Second,
	}
	if apiKey == "" {
		log.Println("insight generation disabled: no api key")
		return g
	}
	g.client = openai.NewClient(option.WithAPIKey(apiKey))
	g.enabled = true
	return g
}

func buildPrompt(condition string) string {
	return fmt.Sprintf(`The current weather is %q. Provide one short motivational quotation (under 20 words, English only) that suits this weather, with its source. Strictly return ONLY JSON: {"quote": "string", "meaning": "citation"}`, condition)
}

// Generate returns an insight for the given condition, or the static
// default on any failure.
func (g *Generator) Generate(ctx context.Context, condition string) models.Insight {
	if g == nil || !g.enabled {
		return models.DefaultInsight()
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(condition)),
		},
	})
	if err != nil {
		log.Printf("insight generation failed: %v", err)
		metrics.InsightFallbacksTotal.Inc()
		return models.DefaultInsight()
	}
	if len(resp.Choices) == 0 {
		metrics.InsightFallbacksTotal.Inc()
		return models.DefaultInsight()
	}

	span, ok := extract.Object(resp.Choices[0].Message.Content)
	if !ok {
		metrics.InsightFallbacksTotal.Inc()
		return models.DefaultInsight()
	}

	var out models.Insight
	if err := json.Unmarshal(span, &out); err != nil || out.Quote == "" {
		metrics.InsightFallbacksTotal.Inc()
		return models.DefaultInsight()
	}
	return out
}
