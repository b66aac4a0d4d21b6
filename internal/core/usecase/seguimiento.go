package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/ports"
)

// TrackingUseCase orchestrates the per-business directory tracking records.
// Consistency across concurrent writers is delegated to the repository's
// upsert (last-write-wins); no locking or retries happen here.
type TrackingUseCase struct {
	repo    ports.TrackingRepository
	stats   ports.StatsRepository
	catalog ports.DirectoryCatalog
	queue   ports.EventQueue
}

func NewTrackingUseCase(
	repo ports.TrackingRepository,
	stats ports.StatsRepository,
	catalog ports.DirectoryCatalog,
	queue ports.EventQueue,
) *TrackingUseCase {
	return &TrackingUseCase{
		repo:    repo,
		stats:   stats,
		catalog: catalog,
		queue:   queue,
	}
}

// List returns every tracking record owned by the calling business. Records
// whose directory has since left the catalog are still returned; consumers
// skip them when joining against the dataset.
func (uc *TrackingUseCase) List(ctx context.Context, negocioID string) ([]domain.RegistroSeguimiento, error) {
	if negocioID == "" {
		return nil, fmt.Errorf("list seguimiento: %w", domain.ErrUnauthorized)
	}
	return uc.repo.ListByNegocio(ctx, negocioID)
}

// SetState upserts the record for (negocio, directorio): it is created in the
// requested state when missing, otherwise transitioned. Any of the four
// states is a legal target; moving backward (e.g. registrado -> pendiente,
// the unmark action) is allowed.
func (uc *TrackingUseCase) SetState(
	ctx context.Context,
	negocioID, directorioSlug string,
	estado domain.EstadoSeguimiento,
) (*domain.RegistroSeguimiento, error) {
	if negocioID == "" {
		return nil, fmt.Errorf("set seguimiento state: %w", domain.ErrUnauthorized)
	}
	if directorioSlug == "" {
		return nil, fmt.Errorf("set seguimiento state: %w: empty directorio slug", domain.ErrEntradaInvalida)
	}
	if !estado.Valido() {
		return nil, fmt.Errorf("set seguimiento state: %w: estado %q", domain.ErrEntradaInvalida, estado)
	}
	if _, ok := uc.catalog.Directorio(directorioSlug); !ok {
		return nil, fmt.Errorf("set seguimiento state: %w: %s", domain.ErrDirectorioNoEncontrado, directorioSlug)
	}

	now := time.Now().UTC()
	registro, err := uc.repo.Upsert(ctx, &domain.RegistroSeguimiento{
		ID:             uuid.NewString(),
		NegocioID:      negocioID,
		DirectorioSlug: directorioSlug,
		Estado:         estado,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	// Stats refresh rides on the event queue; a publish failure must not
	// undo an already-committed state change, so it is only logged.
	if uc.queue != nil {
		if err := uc.queue.PublishSeguimientoActualizado(ctx, negocioID); err != nil {
			slog.Warn("publish seguimiento event failed",
				"negocio_id", negocioID,
				"directorio_slug", directorioSlug,
				"error", err,
			)
		}
	}

	return registro, nil
}

// Stats returns the aggregate maintained by the worker. Missing aggregates
// read as zero, not as an error.
func (uc *TrackingUseCase) Stats(ctx context.Context, negocioID string) (*domain.StatsSeguimiento, error) {
	if negocioID == "" {
		return nil, fmt.Errorf("seguimiento stats: %w", domain.ErrUnauthorized)
	}
	return uc.stats.Get(ctx, negocioID)
}
