package ports

import (
	"context"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

// RecommendationService scores the directory catalog for a business profile.
// Pure and total: empty category/city degrade the score, never fail.
type RecommendationService interface {
	Score(categoriaSlug, ciudad string) []domain.Recomendacion
	Summarize(categoriaSlug, ciudad string) *domain.ResumenRecomendaciones
}

// TrackingService is the inbound contract for directory registration
// progress owned by an authenticated business.
type TrackingService interface {
	List(ctx context.Context, negocioID string) ([]domain.RegistroSeguimiento, error)
	SetState(ctx context.Context, negocioID, directorioSlug string, estado domain.EstadoSeguimiento) (*domain.RegistroSeguimiento, error)
	Stats(ctx context.Context, negocioID string) (*domain.StatsSeguimiento, error)
}

// BusinessService covers self-service registration/profile plus the public
// browse surface.
type BusinessService interface {
	Register(ctx context.Context, negocio *domain.Negocio) (*domain.Negocio, string, error)
	Profile(ctx context.Context, negocioID string) (*domain.Negocio, error)
	UpdateProfile(ctx context.Context, negocio *domain.Negocio) (*domain.Negocio, error)
	Browse(ctx context.Context, filtro domain.FiltroNegocios) ([]domain.Negocio, error)
}

// ModerationService is the admin surface over business accounts.
type ModerationService interface {
	ListByEstado(ctx context.Context, estado domain.EstadoModeracion) ([]domain.Negocio, error)
	Moderate(ctx context.Context, negocioID string, estado domain.EstadoModeracion) (*domain.Negocio, error)
}
