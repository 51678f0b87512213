package community_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideCommunityRepo, provideCommunityService, controllers.NewCommunityController)

func provideCommunityRepo(db *gorm.DB) repositories.CommunityRepository {
	return repositories.NewCommunityRepository(db)
}

func provideCommunityService(communityRepo repositories.CommunityRepository, tripRepo repositories.TripRepository) services.CommunityServiceInterface {
	return services.NewCommunityService(communityRepo, tripRepo)
}
