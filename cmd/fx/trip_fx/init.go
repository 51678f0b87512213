package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/config"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(
	provideTripRepo, provideCalendarExporter, provideTripService, controllers.NewTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideCalendarExporter(cfg config.Config) services.CalendarExporter {
	return services.NewCalendarExporter(cfg.AppName)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	cityRepo repositories.CityRepository,
	calendar services.CalendarExporter,
	log *logger.Logger,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, cityRepo, calendar, log)
}
