package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"globetrotter/cmd/fx/account_fx"
	"globetrotter/cmd/fx/catalog_fx"
	"globetrotter/cmd/fx/chat_fx"
	"globetrotter/cmd/fx/community_fx"
	"globetrotter/cmd/fx/dashboard"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/embedding_fx"
	"globetrotter/cmd/fx/itinerary_fx"
	"globetrotter/cmd/fx/mail_fx"
	"globetrotter/cmd/fx/memcache_fx"
	"globetrotter/cmd/fx/search_fx"
	"globetrotter/cmd/fx/section_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/config"
	"globetrotter/pkg/logger"
	"globetrotter/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTTTL)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		fx.Supply(cfg, appLog),
		fx.WithLogger(func(l *logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Zap()}
		}),

		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		embedding_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		trip_fx.Module,
		section_fx.Module,
		itinerary_fx.Module,
		chat_fx.Module,
		search_fx.Module,
		community_fx.Module,
		dashboard.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting HTTP server", "addr", srv.Addr, "env", cfg.AppEnv)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
