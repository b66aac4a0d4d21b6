package ports

import (
	"context"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

// DirectoryCatalog is the immutable dataset loaded at startup. Implementations
// must be safe for concurrent reads.
type DirectoryCatalog interface {
	Directorios() []domain.Directorio
	Directorio(slug string) (domain.Directorio, bool)
	GrupoDe(categoriaSlug string) (domain.CategoriaDirectorio, bool)
	Categorias() []domain.CategoriaNegocio
}

// TrackingRepository persists registration progress keyed by
// (negocio_id, directorio_slug). Upsert is last-write-wins.
type TrackingRepository interface {
	Upsert(ctx context.Context, registro *domain.RegistroSeguimiento) (*domain.RegistroSeguimiento, error)
	ListByNegocio(ctx context.Context, negocioID string) ([]domain.RegistroSeguimiento, error)
}

// StatsRepository maintains per-business tracking aggregates.
type StatsRepository interface {
	Recalculate(ctx context.Context, negocioID string) error
	Get(ctx context.Context, negocioID string) (*domain.StatsSeguimiento, error)
}

// BusinessRepository persists business accounts and their access tokens.
type BusinessRepository interface {
	Create(ctx context.Context, negocio *domain.Negocio) error
	GetByID(ctx context.Context, id string) (*domain.Negocio, error)
	Update(ctx context.Context, negocio *domain.Negocio) error
	SetEstado(ctx context.Context, id string, estado domain.EstadoModeracion) error
	List(ctx context.Context, filtro domain.FiltroNegocios, estado domain.EstadoModeracion) ([]domain.Negocio, error)
	SaveToken(ctx context.Context, negocioID, tokenDigest string) error
	NegocioIDByToken(ctx context.Context, tokenDigest string) (string, error)
}

// EventQueue carries tracking state-change events from the api to the stats
// worker.
type EventQueue interface {
	PublishSeguimientoActualizado(ctx context.Context, negocioID string) error
	SubscribeSeguimientoActualizado(ctx context.Context, handler func(context.Context, string) error) error
}
