package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"style-sync/internal/config"
	"style-sync/internal/database"
	"style-sync/internal/database/migration"
	dbpostgres "style-sync/internal/database/postgres"
	dbsqlite "style-sync/internal/database/sqlite"
	"style-sync/internal/domain/profile"
	"style-sync/internal/infrastructure/backend"
	"style-sync/internal/infrastructure/cache"
	"style-sync/internal/infrastructure/persistence"
	"style-sync/internal/infrastructure/weatherapi"
	"style-sync/internal/observability"
	"style-sync/internal/usecase"
	"style-sync/internal/usecase/dailyoutfit"
	"style-sync/internal/ws"

	"go.uber.org/zap"
)

const goalsMemoSize = 256

type Container struct {
	Config  config.Config
	Logger  *zap.Logger
	Metrics *observability.Metrics

	DB       database.DB
	Profiles *persistence.ProfileRepository
	Redis    *cache.Redis
	Backend  *backend.Client
	Weather  *weatherapi.Client
	Hub      *ws.Hub

	Quiz      *usecase.Quiz
	Persona   *usecase.Persona
	Outfit    *usecase.Outfit
	Dashboard *usecase.Dashboard
	Debug     *usecase.Debug
	Daily     *dailyoutfit.Service

	stopHub context.CancelFunc
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	metrics, err := observability.NewMetrics("stylesync")
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	c := &Container{Config: cfg, Logger: logger, Metrics: metrics}

	if err := c.openProfileStore(); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Redis = cache.NewRedis(cfg.Redis, logger.Named("cache"))
	c.Backend = backend.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger.Named("backend"), backend.WithObserver(metrics))
	c.Weather = weatherapi.New(cfg.Weather.BaseURL, cfg.Weather.Timeout, logger.Named("weather"))

	c.Hub = ws.NewHub(logger.Named("ws"))
	hubCtx, stop := context.WithCancel(context.Background())
	c.stopHub = stop
	go c.Hub.Run(hubCtx)

	var fallback profile.Repository
	if c.Profiles != nil {
		fallback = c.Profiles
	}

	c.Quiz = usecase.NewQuizUsecase(c.Backend, c.Backend, fallback, metrics, c.Hub, logger.Named("quiz"))
	c.Persona = usecase.NewPersonaUsecase(c.Backend, fallback, metrics, logger.Named("persona"))
	c.Outfit = usecase.NewOutfitUsecase(c.Backend, usecase.DebounceConfig{
		Rating:   cfg.Outfit.RatingDebounce,
		Feedback: cfg.Outfit.FeedbackDebounce,
	}, metrics, c.Hub, logger.Named("outfit"))
	c.Debug = usecase.NewDebugUsecase(c.Backend, metrics, logger.Named("debug"))

	c.Dashboard, err = usecase.NewDashboardUsecase(c.Backend, c.Backend, fallback, goalsMemoSize, metrics, logger.Named("dashboard"))
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("init dashboard: %w", err)
	}

	c.Daily = dailyoutfit.NewService(
		dailyoutfit.NewStore(c.Redis, cfg.Outfit.DailyCacheSize),
		c.Backend,
		c.Weather,
		dailyoutfit.Config{DefaultLat: cfg.Weather.DefaultLat, DefaultLon: cfg.Weather.DefaultLon},
		logger.Named("daily"),
		dailyoutfit.WithRecorder(metrics),
		dailyoutfit.WithNotifier(c.Hub),
	)

	return c, nil
}

// openProfileStore connects the optional local profile store and brings its
// schema up to date.
func (c *Container) openProfileStore() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var (
		db  database.DB
		err error
	)
	switch c.Config.Store.Engine {
	case config.StoreEnginePostgres:
		db, err = dbpostgres.Connect(ctx, c.Config.Database)
	case config.StoreEngineSQLite:
		db, err = dbsqlite.Open(ctx, c.Config.Store.SQLitePath)
	default:
		c.Logger.Info("local profile store disabled")
		return nil
	}
	if err != nil {
		return fmt.Errorf("open profile store: %w", err)
	}
	c.DB = db

	runner := migration.Runner{Dialect: db.Dialect(), Logger: c.Logger.Named("migration")}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migrate profile store: %w", err)
	}

	repo, err := persistence.NewProfileRepository(ctx, db)
	if err != nil {
		return fmt.Errorf("prepare profile repository: %w", err)
	}
	c.Profiles = repo

	c.Logger.Info("local profile store ready", zap.String("engine", string(db.Dialect())))
	return nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	if c.Outfit != nil {
		c.Outfit.Close()
	}
	if c.stopHub != nil {
		c.stopHub()
		<-c.Hub.Done()
	}

	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
