package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/api"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/insight"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/pipeline"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/providers/ai"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/providers/openweather"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/refresh"
	"github.com/kunaal-ai/advanced-weather-panchang/internal/state"
)

type cli struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,help='Optional .env file with API keys.'"`

	Port            string        `kong:"default='8080',env='PORT',help='HTTP server port.'"`
	OpenAIKey       string        `kong:"optional,env='OPENAI_API_KEY',help='OpenAI key for the search-grounded provider. Empty disables it.'"`
	OpenWeatherKey  string        `kong:"optional,env='OPENWEATHER_API_KEY',help='OpenWeatherMap key for the fallback provider. Empty disables it.'"`
	Model           string        `kong:"default='gpt-4o-mini',env='OPENAI_MODEL',help='Model for search, suggestions and insights.'"`
	DefaultCity     string        `kong:"default='San Francisco',env='DEFAULT_CITY',help='City kept warm by the background refresher.'"`
	RefreshInterval time.Duration `kong:"default='30m',env='REFRESH_INTERVAL',help='How often the default-city bundle is re-fetched.'"`
}

func main() {
	var flags cli
	kong.Parse(&flags,
		kong.Name("panchang"),
		kong.Description("Weather and panchang dashboard backend."),
		kong.UsageOnError(),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)

	var primary pipeline.PrimarySource
	var suggester api.Suggester
	aiClient, err := ai.New(flags.OpenAIKey, flags.Model)
	switch {
	case errors.Is(err, ai.ErrNoKey):
		log.Println("OPENAI_API_KEY not set; search-grounded provider disabled")
	case err != nil:
		log.Fatalf("openai client: %v", err)
	default:
		primary = aiClient
		suggester = aiClient
	}

	var fallback pipeline.FallbackSource
	if flags.OpenWeatherKey != "" {
		fallback = openweather.New(flags.OpenWeatherKey, time.Local)
	} else {
		log.Println("OPENWEATHER_API_KEY not set; fallback provider disabled")
	}

	if primary == nil && fallback == nil {
		log.Fatal("no providers configured; set OPENAI_API_KEY or OPENWEATHER_API_KEY")
	}

	pipe := pipeline.New(primary, fallback, nil)
	insights := insight.New(flags.OpenAIKey, flags.Model)
	holder := state.NewHolder()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	refresher := refresh.New(pipe, insights, holder, flags.DefaultCity, flags.RefreshInterval)
	if err := refresher.Start(); err != nil {
		log.Fatalf("refresh scheduler: %v", err)
	}
	defer refresher.Stop()

	server := api.NewServer(pipe, suggester, insights, holder, flags.Port)
	log.Printf("starting server on :%s", flags.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
