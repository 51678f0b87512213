package embedding_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

var Module = fx.Provide(provideEmbeddingRepo, provideActivityEmbedder)

func provideEmbeddingRepo(db *gorm.DB) repositories.ActivityEmbeddingRepository {
	return repositories.NewActivityEmbeddingRepository(db)
}

func provideActivityEmbedder(cfg config.Config, repo repositories.ActivityEmbeddingRepository, log *logger.Logger) services.ActivityEmbedder {
	if !cfg.EmbeddingsEnabled {
		return services.NewDisabledEmbedder()
	}
	client := utils.NewOpenAIEmbeddingClient(cfg.OpenAIAPIKey, cfg.OpenAIEmbeddingModel)
	return services.NewActivityEmbedder(repo, client, log)
}
