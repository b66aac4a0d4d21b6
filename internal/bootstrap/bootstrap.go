package bootstrap

import (
	"context"
	"fmt"

	"github.com/Freskan23/vistoenmaps-api/internal/catalog"
	"github.com/Freskan23/vistoenmaps-api/internal/config"
	"github.com/Freskan23/vistoenmaps-api/internal/core/ports"
	"github.com/Freskan23/vistoenmaps-api/internal/core/usecase"
	"github.com/Freskan23/vistoenmaps-api/internal/infrastructure/queue/nats"
	"github.com/Freskan23/vistoenmaps-api/internal/infrastructure/repository/postgres"
	"github.com/Freskan23/vistoenmaps-api/internal/infrastructure/resilience"
)

type App struct {
	Config config.Config

	Catalog ports.DirectoryCatalog
	Queue   ports.EventQueue

	NegocioRepo ports.BusinessRepository
	StatsRepo   ports.StatsRepository

	RecomendacionesUC ports.RecommendationService
	SeguimientoUC     ports.TrackingService
	NegociosUC        ports.BusinessService
	ModeracionUC      ports.ModerationService

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	directoryCatalog, err := catalog.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	seguimientoRepo := postgres.NewSeguimientoRepository(db)
	negocioRepo := postgres.NewNegocioRepository(db)
	statsRepo := postgres.NewStatsRepository(db)

	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig()),
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init event queue: %w", err)
	}

	recomendacionesUC := usecase.NewRecommendationUseCase(directoryCatalog)
	seguimientoUC := usecase.NewTrackingUseCase(seguimientoRepo, statsRepo, directoryCatalog, queue)
	negociosUC := usecase.NewBusinessUseCase(negocioRepo, directoryCatalog)

	return &App{
		Config: cfg,

		Catalog: directoryCatalog,
		Queue:   queue,

		NegocioRepo: negocioRepo,
		StatsRepo:   statsRepo,

		RecomendacionesUC: recomendacionesUC,
		SeguimientoUC:     seguimientoUC,
		NegociosUC:        negociosUC,
		ModeracionUC:      negociosUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
