package postgres

import (
	"context"
	"database/sql"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

type SeguimientoRepository struct {
	db *sql.DB
}

func NewSeguimientoRepository(db *sql.DB) *SeguimientoRepository {
	return &SeguimientoRepository{db: db}
}

// Upsert creates the record for (negocio, directorio) or overwrites its
// estado. Last write wins; the unique constraint guarantees at most one row
// per pair. The stored row (original id and created_at on conflict) is
// returned.
func (r *SeguimientoRepository) Upsert(ctx context.Context, registro *domain.RegistroSeguimiento) (*domain.RegistroSeguimiento, error) {
	row := r.db.QueryRowContext(ctx, `
INSERT INTO seguimiento_directorios (id, negocio_id, directorio_slug, estado, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6)
ON CONFLICT (negocio_id, directorio_slug)
DO UPDATE SET estado = EXCLUDED.estado, updated_at = EXCLUDED.updated_at
RETURNING id, negocio_id, directorio_slug, estado, created_at, updated_at
`,
		registro.ID, registro.NegocioID, registro.DirectorioSlug,
		string(registro.Estado), registro.CreatedAt, registro.UpdatedAt,
	)

	stored, err := scanRegistro(row)
	if err != nil {
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "upsert seguimiento", err)
	}
	return &stored, nil
}

func (r *SeguimientoRepository) ListByNegocio(ctx context.Context, negocioID string) ([]domain.RegistroSeguimiento, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, negocio_id, directorio_slug, estado, created_at, updated_at
FROM seguimiento_directorios
WHERE negocio_id = $1
ORDER BY updated_at DESC
`, negocioID)
	if err != nil {
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "list seguimiento", err)
	}
	defer rows.Close()

	out := make([]domain.RegistroSeguimiento, 0)
	for rows.Next() {
		registro, err := scanRegistro(rows)
		if err != nil {
			return nil, domain.WrapError(domain.ErrAlmacenamiento, "scan seguimiento", err)
		}
		out = append(out, registro)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "iterate seguimiento", err)
	}
	return out, nil
}

type registroScanner interface {
	Scan(dest ...interface{}) error
}

func scanRegistro(row registroScanner) (domain.RegistroSeguimiento, error) {
	var registro domain.RegistroSeguimiento
	var estado string
	err := row.Scan(
		&registro.ID,
		&registro.NegocioID,
		&registro.DirectorioSlug,
		&estado,
		&registro.CreatedAt,
		&registro.UpdatedAt,
	)
	if err != nil {
		return domain.RegistroSeguimiento{}, err
	}
	registro.Estado = domain.EstadoSeguimiento(estado)
	return registro, nil
}
