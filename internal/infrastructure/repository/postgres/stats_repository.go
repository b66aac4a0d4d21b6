package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// Recalculate replaces the aggregate with a full recount of the business's
// tracking rows. Recounting makes the handler idempotent, which matters
// because events may be redelivered and tracking writes are last-write-wins.
func (r *StatsRepository) Recalculate(ctx context.Context, negocioID string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO negocio_stats (negocio_id, pendientes, registrados, activos, rechazados, total, updated_at)
SELECT
	$1,
	COUNT(*) FILTER (WHERE estado = 'pendiente'),
	COUNT(*) FILTER (WHERE estado = 'registrado'),
	COUNT(*) FILTER (WHERE estado = 'activo'),
	COUNT(*) FILTER (WHERE estado = 'rechazado'),
	COUNT(*),
	$2
FROM seguimiento_directorios
WHERE negocio_id = $1
ON CONFLICT (negocio_id)
DO UPDATE SET
	pendientes = EXCLUDED.pendientes,
	registrados = EXCLUDED.registrados,
	activos = EXCLUDED.activos,
	rechazados = EXCLUDED.rechazados,
	total = EXCLUDED.total,
	updated_at = EXCLUDED.updated_at
`, negocioID, time.Now().UTC())
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "recalculate stats", err)
	}
	return nil
}

// Get reads the aggregate; a business without one yet reads as all zeros.
func (r *StatsRepository) Get(ctx context.Context, negocioID string) (*domain.StatsSeguimiento, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT negocio_id, pendientes, registrados, activos, rechazados, total, updated_at
FROM negocio_stats
WHERE negocio_id = $1
`, negocioID)

	var stats domain.StatsSeguimiento
	err := row.Scan(
		&stats.NegocioID,
		&stats.Pendientes,
		&stats.Registrados,
		&stats.Activos,
		&stats.Rechazados,
		&stats.Total,
		&stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &domain.StatsSeguimiento{NegocioID: negocioID}, nil
		}
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "get stats", err)
	}
	return &stats, nil
}
