package cmd

import (
	"database/sql"
	"fmt"

	"floodloss/api"
	"floodloss/internal/app"
	"floodloss/internal/calculator"
	"floodloss/internal/domain"
	"floodloss/internal/logger"
	"floodloss/internal/repository"
	"floodloss/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Dependencies is everything the entry points need, wired from one config.
type Dependencies struct {
	Config      *util.Config
	Logger      *zap.SugaredLogger
	Db          *sql.DB
	CurveStore  calculator.CurveStore
	Resolver    calculator.LossResolver
	LossRunApp  app.LossRunApp
	ApiHandler  *api.ApiHandler
	Intensities []string
}

func CloseDependencies(deps *Dependencies) {
	if deps.Db != nil {
		if err := deps.Db.Close(); err != nil {
			deps.Logger.Errorw("failed to close db", "error", err.Error())
		}
	}
	_ = deps.Logger.Sync()
}

func InitializeDependencies(configPath string) (*Dependencies, error) {
	log := logger.New()

	cfg, err := util.LoadConfig(util.ConfigPath(configPath))
	if err != nil {
		return nil, err
	}

	curveCfg := cfg.Input.LossCurves
	curveStore, err := calculator.LoadCurveStore(
		calculator.CurveStoreConfig{
			Directory:  curveCfg.Path,
			Extension:  curveCfg.Extension,
			Resolution: curveCfg.IndexResolution,
			MaxDepth:   curveCfg.MaxIndex,
		},
		repository.NewLossCurveFileRepository(),
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load loss curves: %w", err)
	}

	naming := domain.ColumnNaming{
		IDColumn:        cfg.Input.Assets.ID,
		ValueColumn:     cfg.Input.Assets.Value,
		CurveColumn:     cfg.Input.Assets.LossCurve,
		IntensitySuffix: cfg.Input.Assets.IntensitySuffix,
		PercLossSuffix:  cfg.Output.PercLossSuffix,
		LossValueSuffix: cfg.Output.LossValueSuffix,
	}
	intensities := cfg.Input.Assets.Intensities
	aggregatorCfg := calculator.AggregatorConfig{
		Naming:      naming,
		Intensities: intensities,
		Workers:     cfg.Evaluation.Workers,
	}

	resolver := calculator.NewLossResolver(curveStore, log)
	aggregator := calculator.NewLossAggregator(aggregatorCfg, resolver, log)

	var depthExpression *calculator.DepthExpression
	if cfg.Input.Assets.DepthExpression != "" {
		depthExpression, err = calculator.NewDepthExpression(cfg.Input.Assets.DepthExpression)
		if err != nil {
			return nil, err
		}
	}

	var dbConn *sql.DB
	var runDb qrm.Executable
	var lossRunRepository repository.LossRunRepository
	if cfg.Db != nil {
		dbConn, err = sql.Open("postgres", cfg.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		lossRunRepository = repository.NewLossRunRepository()
		if err := lossRunRepository.EnsureSchema(dbConn); err != nil {
			dbConn.Close()
			return nil, err
		}
		runDb = dbConn
	}

	lossRunApp := app.NewLossRunApp(
		runDb,
		repository.NewAssetTableRepository(repository.AssetSchema{
			Naming:      naming,
			Intensities: intensities,
		}),
		repository.NewStatsFileRepository(),
		lossRunRepository,
		aggregator,
		depthExpression,
		intensities,
		log,
	)

	apiHandler := &api.ApiHandler{
		Db:                dbConn,
		CurveStore:        curveStore,
		LossResolver:      resolver,
		AggregatorConfig:  aggregatorCfg,
		LossRunRepository: lossRunRepository,
		Logger:            log,
	}

	return &Dependencies{
		Config:      cfg,
		Logger:      log,
		Db:          dbConn,
		CurveStore:  curveStore,
		Resolver:    resolver,
		LossRunApp:  lossRunApp,
		ApiHandler:  apiHandler,
		Intensities: intensities,
	}, nil
}
