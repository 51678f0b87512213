package chat_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(provideChatAssistant, provideChatService, controllers.NewChatController)

// provideChatAssistant follows ITINERARY_PROVIDER. The http provider needs CHAT_SERVICE_URL;
// without it the assistant is nil and the chat route answers 503.
func provideChatAssistant(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (services.ChatAssistant, error) {
	switch cfg.ItineraryProvider {
	case config.ProviderOpenAI:
		log.Info("Chat assistant: openai", "model", cfg.OpenAIModel)
		return utils.NewOpenAIChatClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case config.ProviderGemini:
		client, err := utils.NewGeminiChatClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("gemini chat client: %w", err)
		}
		lc.Append(fx.Hook{OnStop: func(context.Context) error { return client.Close() }})
		log.Info("Chat assistant: gemini", "model", cfg.GeminiModel)
		return client, nil
	default:
		if cfg.ChatServiceURL == "" {
			log.Warn("Chat assistant disabled, CHAT_SERVICE_URL is not set")
			return nil, nil
		}
		log.Info("Chat assistant: http", "url", cfg.ChatServiceURL)
		return utils.NewHTTPChatClient(cfg.ChatServiceURL, cfg.ChatTimeout), nil
	}
}

func provideChatService(assistant services.ChatAssistant, cfg config.Config, log *logger.Logger) services.ChatServiceInterface {
	return services.NewChatService(assistant, cfg.ChatTimeout, log)
}
