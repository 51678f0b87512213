package search_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(provideSearchService, controllers.NewSearchController)

func provideSearchService(
	cityRepo repositories.CityRepository,
	activityRepo repositories.ActivityRepository,
	embedder services.ActivityEmbedder,
	log *logger.Logger,
) services.SearchServiceInterface {
	return services.NewSearchService(cityRepo, activityRepo, embedder, log)
}
