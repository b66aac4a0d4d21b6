package usecase

import (
	"context"
	"testing"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

type businessRepoFake struct {
	negocios map[string]*domain.Negocio
	tokens   map[string]string
}

func newBusinessRepoFake() *businessRepoFake {
	return &businessRepoFake{
		negocios: make(map[string]*domain.Negocio),
		tokens:   make(map[string]string),
	}
}

func (f *businessRepoFake) Create(_ context.Context, negocio *domain.Negocio) error {
	stored := *negocio
	f.negocios[negocio.ID] = &stored
	return nil
}

func (f *businessRepoFake) GetByID(_ context.Context, id string) (*domain.Negocio, error) {
	if n, ok := f.negocios[id]; ok {
		out := *n
		return &out, nil
	}
	return nil, domain.ErrNegocioNoEncontrado
}

func (f *businessRepoFake) Update(_ context.Context, negocio *domain.Negocio) error {
	stored := *negocio
	f.negocios[negocio.ID] = &stored
	return nil
}

func (f *businessRepoFake) SetEstado(_ context.Context, id string, estado domain.EstadoModeracion) error {
	n, ok := f.negocios[id]
	if !ok {
		return domain.ErrNegocioNoEncontrado
	}
	n.Estado = estado
	return nil
}

func (f *businessRepoFake) List(_ context.Context, filtro domain.FiltroNegocios, estado domain.EstadoModeracion) ([]domain.Negocio, error) {
	out := make([]domain.Negocio, 0)
	for _, n := range f.negocios {
		if n.Estado != estado {
			continue
		}
		if filtro.CategoriaSlug != "" && n.CategoriaSlug != filtro.CategoriaSlug {
			continue
		}
		if filtro.Ciudad != "" && n.Ciudad != filtro.Ciudad {
			continue
		}
		if filtro.Barrio != "" && n.Barrio != filtro.Barrio {
			continue
		}
		out = append(out, *n)
	}
	return out, nil
}

func (f *businessRepoFake) SaveToken(_ context.Context, negocioID, tokenDigest string) error {
	f.tokens[tokenDigest] = negocioID
	return nil
}

func (f *businessRepoFake) NegocioIDByToken(_ context.Context, tokenDigest string) (string, error) {
	if id, ok := f.tokens[tokenDigest]; ok {
		return id, nil
	}
	return "", domain.ErrUnauthorized
}

func TestBusinessRegisterCreatesPendingAccountWithToken(t *testing.T) {
	repo := newBusinessRepoFake()
	uc := NewBusinessUseCase(repo, fixtureCatalog())

	negocio, token, err := uc.Register(context.Background(), &domain.Negocio{
		Nombre:        "Cerrajería Sol",
		Email:         "sol@example.com",
		CategoriaSlug: "cerrajeros",
		Ciudad:        "madrid",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if negocio.Estado != domain.ModeracionPendiente {
		t.Fatalf("estado = %s, want pendiente", negocio.Estado)
	}
	if token == "" {
		t.Fatalf("expected a bearer token")
	}

	id, err := repo.NegocioIDByToken(context.Background(), TokenDigest(token))
	if err != nil {
		t.Fatalf("token lookup error = %v", err)
	}
	if id != negocio.ID {
		t.Fatalf("token resolves to %s, want %s", id, negocio.ID)
	}
}

func TestBusinessRegisterValidation(t *testing.T) {
	uc := NewBusinessUseCase(newBusinessRepoFake(), fixtureCatalog())

	if _, _, err := uc.Register(context.Background(), &domain.Negocio{Email: "a@b.com"}); !domain.IsKind(err, domain.ErrEntradaInvalida) {
		t.Fatalf("expected invalid input for missing nombre, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), &domain.Negocio{Nombre: "X"}); !domain.IsKind(err, domain.ErrEntradaInvalida) {
		t.Fatalf("expected invalid input for missing email, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), &domain.Negocio{
		Nombre: "X", Email: "a@b.com", CategoriaSlug: "no-existe",
	}); !domain.IsKind(err, domain.ErrEntradaInvalida) {
		t.Fatalf("expected invalid input for unknown categoria, got %v", err)
	}
}

func TestBusinessBrowseReturnsOnlyApproved(t *testing.T) {
	repo := newBusinessRepoFake()
	uc := NewBusinessUseCase(repo, fixtureCatalog())

	aprobado, _, err := uc.Register(context.Background(), &domain.Negocio{
		Nombre: "Aprobado", Email: "a@b.com", CategoriaSlug: "cerrajeros", Ciudad: "madrid",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, _, err := uc.Register(context.Background(), &domain.Negocio{
		Nombre: "Pendiente", Email: "p@b.com", Ciudad: "madrid",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := uc.Moderate(context.Background(), aprobado.ID, domain.ModeracionAprobado); err != nil {
		t.Fatalf("Moderate() error = %v", err)
	}

	list, err := uc.Browse(context.Background(), domain.FiltroNegocios{Ciudad: "madrid"})
	if err != nil {
		t.Fatalf("Browse() error = %v", err)
	}
	if len(list) != 1 || list[0].Nombre != "Aprobado" {
		t.Fatalf("expected only the approved business, got %+v", list)
	}
}

func TestBusinessModerateRejectsInvalidTarget(t *testing.T) {
	uc := NewBusinessUseCase(newBusinessRepoFake(), fixtureCatalog())
	if _, err := uc.Moderate(context.Background(), "n-1", domain.ModeracionPendiente); !domain.IsKind(err, domain.ErrEntradaInvalida) {
		t.Fatalf("expected invalid input for pendiente target, got %v", err)
	}
}

func TestBusinessUpdateProfilePreservesModerationState(t *testing.T) {
	repo := newBusinessRepoFake()
	uc := NewBusinessUseCase(repo, fixtureCatalog())

	negocio, _, err := uc.Register(context.Background(), &domain.Negocio{
		Nombre: "Antes", Email: "a@b.com",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := uc.Moderate(context.Background(), negocio.ID, domain.ModeracionAprobado); err != nil {
		t.Fatalf("Moderate() error = %v", err)
	}

	updated, err := uc.UpdateProfile(context.Background(), &domain.Negocio{
		ID: negocio.ID, Nombre: "Después", CategoriaSlug: "cerrajeros", Ciudad: "madrid",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Nombre != "Después" || updated.CategoriaSlug != "cerrajeros" {
		t.Fatalf("profile fields not updated: %+v", updated)
	}
	if updated.Estado != domain.ModeracionAprobado {
		t.Fatalf("moderation state must survive profile updates, got %s", updated.Estado)
	}
	if updated.Email != "a@b.com" {
		t.Fatalf("email must not change on profile update, got %s", updated.Email)
	}
}
