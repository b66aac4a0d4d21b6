package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

func negocioRows(ids ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "nombre", "email", "categoria_slug", "ciudad", "barrio",
		"telefono", "web", "descripcion", "estado", "created_at", "updated_at",
	})
	now := time.Now().UTC()
	for _, id := range ids {
		rows.AddRow(id, "Negocio "+id, id+"@example.com", "cerrajeros", "madrid", "centro",
			"", "", "", string(domain.ModeracionAprobado), now, now)
	}
	return rows
}

func TestNegocioRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewNegocioRepository(db)
	mock.ExpectQuery("FROM negocios").
		WithArgs("missing").
		WillReturnRows(negocioRows())

	_, err = repo.GetByID(context.Background(), "missing")
	if !domain.IsKind(err, domain.ErrNegocioNoEncontrado) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestNegocioRepositoryListAppliesFilters(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewNegocioRepository(db)
	mock.ExpectQuery("FROM negocios").
		WithArgs(string(domain.ModeracionAprobado), "cerrajeros", "madrid").
		WillReturnRows(negocioRows("n-1"))

	list, err := repo.List(context.Background(), domain.FiltroNegocios{
		CategoriaSlug: "cerrajeros",
		Ciudad:        "madrid",
	}, domain.ModeracionAprobado)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 || list[0].ID != "n-1" {
		t.Fatalf("unexpected list %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestNegocioRepositorySetEstadoNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewNegocioRepository(db)
	mock.ExpectExec("UPDATE negocios").
		WithArgs("missing", string(domain.ModeracionAprobado), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.SetEstado(context.Background(), "missing", domain.ModeracionAprobado)
	if !domain.IsKind(err, domain.ErrNegocioNoEncontrado) {
		t.Fatalf("expected not-found kind, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestNegocioRepositoryTokenLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewNegocioRepository(db)
	mock.ExpectQuery("FROM negocio_tokens").
		WithArgs("digest-1").
		WillReturnRows(sqlmock.NewRows([]string{"negocio_id"}).AddRow("n-1"))

	id, err := repo.NegocioIDByToken(context.Background(), "digest-1")
	if err != nil {
		t.Fatalf("NegocioIDByToken() error = %v", err)
	}
	if id != "n-1" {
		t.Fatalf("expected n-1, got %s", id)
	}

	mock.ExpectQuery("FROM negocio_tokens").
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows([]string{"negocio_id"}))

	if _, err := repo.NegocioIDByToken(context.Background(), "unknown"); !domain.IsKind(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for unknown token, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
