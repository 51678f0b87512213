package itinerary_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
	"globetrotter/pkg/middleware"
	"globetrotter/pkg/utils"
)

// AILimiter guards the AI trigger route.
type AILimiter struct {
	*middleware.RateLimiter
}

var Module = fx.Provide(
	provideGenerator, provideItineraryService, provideAILimiter, controllers.NewItineraryController)

func provideGenerator(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (services.ItineraryGenerator, error) {
	switch cfg.ItineraryProvider {
	case config.ProviderOpenAI:
		log.Info("Itinerary generator: openai", "model", cfg.OpenAIModel)
		return utils.NewOpenAIItineraryClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		client, err := utils.NewGeminiItineraryClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("gemini client: %w", err)
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return client.Close() }})
		log.Info("Itinerary generator: gemini", "model", cfg.GeminiModel)
		return client, nil
	default:
		log.Info("Itinerary generator: http", "url", cfg.ItineraryServiceURL)
		return utils.NewHTTPItineraryClient(cfg.ItineraryServiceURL, cfg.ItineraryTimeout), nil
	}
}

func provideItineraryService(
	activityRepo repositories.ActivityRepository,
	sectionRepo repositories.SectionRepository,
	generator services.ItineraryGenerator,
	locker mem.TripLocker,
	cfg config.Config,
	log *logger.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(activityRepo, sectionRepo, generator, locker, cfg.ItineraryTimeout, log)
}

func provideAILimiter(cfg config.Config) AILimiter {
	return AILimiter{middleware.NewRateLimiter(cfg.AIRateLimitPerMin)}
}
