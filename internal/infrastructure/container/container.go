// Package container assembles the application with Uber Fx.
package container

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
	"go.uber.org/zap"

	recipeapp "github.com/recipehub/backend/internal/application/recipe"
	userapp "github.com/recipehub/backend/internal/application/user"
	"github.com/recipehub/backend/internal/infrastructure/config"
	httpserver "github.com/recipehub/backend/internal/infrastructure/http"
	"github.com/recipehub/backend/internal/infrastructure/persistence/migrations"
	"github.com/recipehub/backend/internal/infrastructure/persistence/postgres"
	"github.com/recipehub/backend/internal/infrastructure/security"
	"github.com/recipehub/backend/internal/infrastructure/storage"
	"github.com/recipehub/backend/internal/ports/inbound"
	"github.com/recipehub/backend/internal/ports/outbound"
	"github.com/recipehub/backend/pkg/logger"
)

// Module is the full application graph.
var Module = fx.Options(
	configModule,
	loggerModule,
	databaseModule,
	securityModule,
	storageModule,
	serviceModule,
	httpModule,
	fx.Invoke(runServer),
)

var configModule = fx.Provide(func() (*config.Config, error) {
	return config.Load(os.Getenv("RECIPEHUB_CONFIG_PATH"))
})

var loggerModule = fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: !cfg.App.IsProduction(),
	})
})

var databaseModule = fx.Options(
	fx.Provide(func(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*pgxpool.Pool, error) {
		if err := migrations.Run(cfg.Database.GetDSN(), log.Named("migrations")); err != nil {
			return nil, err
		}

		pool, err := postgres.NewPool(context.Background(), cfg.Database, log)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				pool.Close()
				return nil
			},
		})
		return pool, nil
	}),
	fx.Provide(
		fx.Annotate(postgres.NewRecipeRepository, fx.As(new(outbound.RecipeRepository))),
		fx.Annotate(postgres.NewUserRepository, fx.As(new(outbound.UserRepository))),
	),
)

var securityModule = fx.Options(
	fx.Provide(func(cfg *config.Config) *security.JWTManager {
		return security.NewJWTManager(cfg.Auth)
	}),
	fx.Provide(func(m *security.JWTManager) outbound.TokenSigner { return m }),
	fx.Provide(func(cfg *config.Config) outbound.PasswordHasher {
		return security.NewBcryptHasher(cfg.Auth.BcryptCost)
	}),
	fx.Provide(func(cfg *config.Config) outbound.AdminPolicy {
		return security.NewConfigAdminPolicy(cfg.Auth.AdminUsernames)
	}),
)

var storageModule = fx.Options(
	fx.Provide(func(cfg *config.Config) (*storage.LocalFileStorage, error) {
		return storage.NewLocalFileStorage(cfg.Storage.StaticDir)
	}),
	fx.Provide(func(s *storage.LocalFileStorage) outbound.FileStorage { return s }),
)

var serviceModule = fx.Provide(
	fx.Annotate(recipeapp.NewService, fx.As(new(inbound.RecipeService))),
	fx.Annotate(userapp.NewService, fx.As(new(inbound.UserService))),
)

var httpModule = fx.Provide(
	httpserver.NewRecipeHandler,
	httpserver.NewUserHandler,
	httpserver.NewImageHandler,
	httpserver.NewServer,
)

func runServer(lc fx.Lifecycle, server *httpserver.Server, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
