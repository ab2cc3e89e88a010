// Package server wires configuration, storage, services and transports into
// the listings server process and runs it until a shutdown signal arrives.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/unity/internal/logging"
	"github.com/dmitrijs2005/unity/internal/server/config"
	"github.com/dmitrijs2005/unity/internal/server/httpapi"
	"github.com/dmitrijs2005/unity/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unity/internal/server/repositories/supabase"
	"github.com/dmitrijs2005/unity/internal/server/services"

	gs "github.com/dmitrijs2005/unity/internal/server/grpc"
)

const sweeperStopTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	flush    func() error
	repos    repomanager.RepositoryManager
	services services.Set
	sweeper  *services.AvailabilitySweeper
}

// openPostgres is a seam for tests.
var openPostgres = func(ctx context.Context, dsn string) (repomanager.RepositoryManager, error) {
	db, err := repomanager.OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return repomanager.NewPostgresRepositoryManager(db), nil
}

func newRepositoryManager(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.Backend {
	case config.BackendPostgres:
		return openPostgres(ctx, c.DatabaseDSN)
	case config.BackendSupabase:
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			return nil, fmt.Errorf("supabase backend needs both url and service key")
		}
		return repomanager.NewSupabaseRepositoryManager(supabase.NewClient(c.SupabaseURL, c.SupabaseKey, c.RequestTimeout)), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
}

func newImageResolver(c *config.Config) services.ImageResolver {
	if c.S3Bucket == "" {
		return services.PassthroughResolver{}
	}
	return services.NewS3ImageResolver(c)
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, flush, err := logging.New(c.LogBackend, c.LogDebug, os.Stdout)
	if err != nil {
		return nil, err
	}

	repos, err := newRepositoryManager(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	if err := repos.RunMigrations(ctx); err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	app := &App{
		config: c,
		logger: logger,
		flush:  flush,
		repos:  repos,
		services: services.Set{
			Browse:   services.NewBrowseService(repos, newImageResolver(c), logger),
			Listings: services.NewListingService(repos, logger, c.AvailableNowWindow),
			Upgrades: services.NewUpgradeService(repos, logger),
			Identity: services.NewIdentityService(repos, c.SecretKey),
		},
	}

	if c.AvailabilitySweepSchedule != "" {
		sw, err := services.NewAvailabilitySweeper(repos, logger, c.AvailabilitySweepSchedule)
		if err != nil {
			_ = repos.Close()
			return nil, err
		}
		app.sweeper = sw
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// runner is a transport started by Run.
type runner interface {
	Run(ctx context.Context) error
}

func (app *App) start(ctx context.Context, cancelFunc context.CancelFunc, name string, r runner) {
	if err := r.Run(ctx); err != nil {
		app.logger.Error(ctx, "server failed", "server", name, "error", err)
		cancelFunc()
	}
}

// Run serves gRPC and HTTP until ctx is cancelled, a signal arrives or one
// of the servers fails, then releases storage.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "backend", app.config.Backend)

	app.initSignalHandler(cancelFunc)

	if app.sweeper != nil {
		app.sweeper.Start()
	}

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "grpc", gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services))
	}()
	go func() {
		defer wg.Done()
		app.start(ctx, cancelFunc, "http", httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.services, app.config.RequestTimeout))
	}()

	wg.Wait()

	app.shutdown()
}

func (app *App) shutdown() {
	ctx := context.Background()

	if app.sweeper != nil {
		stopCtx, cancel := context.WithTimeout(ctx, sweeperStopTimeout)
		app.sweeper.Stop(stopCtx)
		cancel()
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "close storage", "error", err)
	}

	app.logger.Info(ctx, "App stopped")

	if err := app.flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
