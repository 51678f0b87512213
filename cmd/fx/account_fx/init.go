package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/api/controllers"
	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
	mem "globetrotter/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, mailService services.IMailService, memcache mem.ResetTokenStore, log *logger.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, mailService, memcache, log)
}
