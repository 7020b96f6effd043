package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/plankit/modules/plans"
	"github.com/dmitrymomot/plankit/modules/users"
	"github.com/dmitrymomot/plankit/pkg/config"
	"github.com/dmitrymomot/plankit/pkg/httpserver"
	"github.com/dmitrymomot/plankit/pkg/identity"
	"github.com/dmitrymomot/plankit/pkg/logger"
	pkgmongo "github.com/dmitrymomot/plankit/pkg/mongo"
	"github.com/dmitrymomot/plankit/pkg/requestid"
	"github.com/dmitrymomot/plankit/pkg/rolegate"
)

type appConfig struct {
	HTTP  httpserver.Config
	Mongo pkgmongo.Config
	Log   logger.Config

	// IdentityHeader names the header a trusted upstream proxy uses to
	// attach the caller identifier.
	IdentityHeader string `env:"IDENTITY_HEADER" envDefault:"X-User-ID"`
	MaxPageLimit   int64  `env:"MAX_PAGE_LIMIT" envDefault:"100"`
	// AdminWrites gates plan creation behind the admin role. Reads stay
	// open to any authenticated caller either way.
	AdminWrites bool `env:"PLANS_ADMIN_WRITES" envDefault:"true"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithService("plankit"),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			identity.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("service exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	client, err := pkgmongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error("mongo disconnect failed", logger.Error(err))
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	if err := plans.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensure plan indexes: %w", err)
	}

	planHandler := plans.NewHandler(plans.NewMongoStore(db),
		plans.WithLogger(log),
		plans.WithMaxLimit(cfg.MaxPageLimit),
	)

	routerOpts := plans.RouterOptions{}
	if cfg.AdminWrites {
		routerOpts.WriteGate = rolegate.Require(rolegate.RoleAdmin,
			users.NewMongoSource(db),
			rolegate.WithLogger(log),
		)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(identity.Middleware(identity.NewHeaderResolver(cfg.IdentityHeader)))
	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, pkgmongo.Healthcheck(client)))
	r.Mount("/plans", planHandler.Router(routerOpts))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, r)
}
