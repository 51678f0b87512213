package section_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(
	provideSectionRepo, provideSectionService, controllers.NewSectionController)

func provideSectionRepo(db *gorm.DB) repositories.SectionRepository {
	return repositories.NewSectionRepository(db)
}

func provideSectionService(
	sectionRepo repositories.SectionRepository,
	tripRepo repositories.TripRepository,
	log *logger.Logger,
) services.SectionServiceInterface {
	return services.NewSectionService(sectionRepo, tripRepo, log)
}
