package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(
	provideCityRepo, provideActivityRepo,
	provideCityService, provideActivityService,
	controllers.NewCityController, controllers.NewActivityController,
)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideCityService(cityRepo repositories.CityRepository) services.CityServiceInterface {
	return services.NewCityService(cityRepo)
}

func provideActivityService(
	activityRepo repositories.ActivityRepository,
	cityRepo repositories.CityRepository,
	embedder services.ActivityEmbedder,
	log *logger.Logger,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, cityRepo, embedder, log)
}
