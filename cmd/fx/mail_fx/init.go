package mail_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/config"
	"globetrotter/internal/services"
	"globetrotter/pkg/logger"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg config.Config, log *logger.Logger) services.IMailService {
	return services.NewMailService(cfg, log)
}
