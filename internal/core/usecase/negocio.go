package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/ports"
)

// BusinessUseCase covers self-service registration and profile management,
// the public browse surface, and admin moderation.
type BusinessUseCase struct {
	repo    ports.BusinessRepository
	catalog ports.DirectoryCatalog
}

func NewBusinessUseCase(repo ports.BusinessRepository, catalog ports.DirectoryCatalog) *BusinessUseCase {
	return &BusinessUseCase{repo: repo, catalog: catalog}
}

// Register creates a pending business account and mints its bearer token.
// The plain token is returned once; only its digest is stored.
func (uc *BusinessUseCase) Register(ctx context.Context, negocio *domain.Negocio) (*domain.Negocio, string, error) {
	if err := uc.validateProfile(negocio, true); err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	negocio.ID = uuid.NewString()
	negocio.Estado = domain.ModeracionPendiente
	negocio.CreatedAt = now
	negocio.UpdatedAt = now

	if err := uc.repo.Create(ctx, negocio); err != nil {
		return nil, "", err
	}

	token := uuid.NewString()
	if err := uc.repo.SaveToken(ctx, negocio.ID, TokenDigest(token)); err != nil {
		return nil, "", err
	}
	return negocio, token, nil
}

func (uc *BusinessUseCase) Profile(ctx context.Context, negocioID string) (*domain.Negocio, error) {
	if negocioID == "" {
		return nil, fmt.Errorf("get perfil: %w", domain.ErrUnauthorized)
	}
	return uc.repo.GetByID(ctx, negocioID)
}

// UpdateProfile replaces the caller-editable fields. The moderation state is
// never touched from the dashboard.
func (uc *BusinessUseCase) UpdateProfile(ctx context.Context, negocio *domain.Negocio) (*domain.Negocio, error) {
	if negocio.ID == "" {
		return nil, fmt.Errorf("update perfil: %w", domain.ErrUnauthorized)
	}
	if err := uc.validateProfile(negocio, false); err != nil {
		return nil, err
	}

	current, err := uc.repo.GetByID(ctx, negocio.ID)
	if err != nil {
		return nil, err
	}
	current.Nombre = negocio.Nombre
	current.CategoriaSlug = negocio.CategoriaSlug
	current.Ciudad = negocio.Ciudad
	current.Barrio = negocio.Barrio
	current.Telefono = negocio.Telefono
	current.Web = negocio.Web
	current.Descripcion = negocio.Descripcion
	current.UpdatedAt = time.Now().UTC()

	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Browse lists approved businesses for the public catalog pages.
func (uc *BusinessUseCase) Browse(ctx context.Context, filtro domain.FiltroNegocios) ([]domain.Negocio, error) {
	return uc.repo.List(ctx, filtro, domain.ModeracionAprobado)
}

func (uc *BusinessUseCase) ListByEstado(ctx context.Context, estado domain.EstadoModeracion) ([]domain.Negocio, error) {
	if !estado.Valido() {
		return nil, fmt.Errorf("list negocios: %w: estado %q", domain.ErrEntradaInvalida, estado)
	}
	return uc.repo.List(ctx, domain.FiltroNegocios{}, estado)
}

// Moderate resolves a pending account to aprobado or rechazado.
func (uc *BusinessUseCase) Moderate(ctx context.Context, negocioID string, estado domain.EstadoModeracion) (*domain.Negocio, error) {
	if estado != domain.ModeracionAprobado && estado != domain.ModeracionRechazado {
		return nil, fmt.Errorf("moderar negocio: %w: estado %q", domain.ErrEntradaInvalida, estado)
	}
	if err := uc.repo.SetEstado(ctx, negocioID, estado); err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, negocioID)
}

func (uc *BusinessUseCase) validateProfile(negocio *domain.Negocio, requireEmail bool) error {
	if strings.TrimSpace(negocio.Nombre) == "" {
		return fmt.Errorf("validate negocio: %w: nombre is required", domain.ErrEntradaInvalida)
	}
	if requireEmail && !strings.Contains(negocio.Email, "@") {
		return fmt.Errorf("validate negocio: %w: email is required", domain.ErrEntradaInvalida)
	}
	if negocio.CategoriaSlug != "" {
		if _, ok := uc.catalog.GrupoDe(negocio.CategoriaSlug); !ok {
			return fmt.Errorf("validate negocio: %w: categoria %q", domain.ErrEntradaInvalida, negocio.CategoriaSlug)
		}
	}
	return nil
}

// TokenDigest is the stored form of a bearer token.
func TokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
