package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatsRepositoryGetMissingRowReadsAsZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)
	mock.ExpectQuery("FROM negocio_stats").
		WithArgs("n-1").
		WillReturnRows(sqlmock.NewRows([]string{"negocio_id", "pendientes", "registrados", "activos", "rechazados", "total", "updated_at"}))

	stats, err := repo.Get(context.Background(), "n-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stats.NegocioID != "n-1" || stats.Total != 0 {
		t.Fatalf("expected zero stats for n-1, got %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatsRepositoryRecalculateUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)
	mock.ExpectExec("INSERT INTO negocio_stats").
		WithArgs("n-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Recalculate(context.Background(), "n-1"); err != nil {
		t.Fatalf("Recalculate() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatsRepositoryGetReturnsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	defer db.Close()

	repo := NewStatsRepository(db)
	now := time.Now().UTC()
	mock.ExpectQuery("FROM negocio_stats").
		WithArgs("n-1").
		WillReturnRows(sqlmock.NewRows([]string{"negocio_id", "pendientes", "registrados", "activos", "rechazados", "total", "updated_at"}).
			AddRow("n-1", 2, 3, 1, 0, 6, now))

	stats, err := repo.Get(context.Background(), "n-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stats.Registrados != 3 || stats.Total != 6 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
