package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/alexanderramin/wbsimport/internal/api"
	"github.com/alexanderramin/wbsimport/internal/cli"
	"github.com/alexanderramin/wbsimport/internal/config"
	"github.com/alexanderramin/wbsimport/internal/db"
	"github.com/alexanderramin/wbsimport/internal/importer"
	"github.com/alexanderramin/wbsimport/internal/logging"
	"github.com/alexanderramin/wbsimport/internal/repository"
	"github.com/alexanderramin/wbsimport/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultEnvFiles...)
	if err != nil {
		return errors.Wrap(err, "loading configuration")
	}
	logger := logging.New(cfg.LogrusLogLevel(), os.Stderr)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer database.Close()

	// Wire repositories
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	wbsRepo := repository.NewSQLiteWBSRepo(database)
	fileRepo := repository.NewSQLiteSourceFileRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	resolvers, err := cfg.ResolverFactory()
	if err != nil {
		return err
	}
	registry := importer.NewRegistry()
	observer := service.NewLogUseCaseObserver(logger)

	// Wire services
	importSvc := service.NewImportService(scheduleRepo, wbsRepo,
		service.WithResolverFactory(resolvers),
		service.WithSchedulePolicy(cfg.Policy(), uow),
		service.WithRegistry(registry),
		service.WithObserver(observer),
	)
	scheduleSvc := service.NewScheduleService(scheduleRepo, wbsRepo)
	uploadSvc := service.NewUploadService(cfg.UploadDir, fileRepo, registry, importSvc, observer)

	app := &cli.App{
		Import:    importSvc,
		Schedules: scheduleSvc,
		Registry:  registry,
		Serve: func(ctx context.Context) error {
			router := api.NewRouter(api.Options{
				Uploads:        uploadSvc,
				Schedules:      scheduleSvc,
				Logger:         logger,
				MaxUploadBytes: cfg.MaxUploadBytes,
				MetricsEnabled: cfg.MetricsEnabled,
			})
			return api.Serve(ctx, cfg.ListenAddr, router, logger)
		},
	}

	return cli.NewRootCmd(app).Execute()
}
