package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

type NegocioRepository struct {
	db *sql.DB
}

func NewNegocioRepository(db *sql.DB) *NegocioRepository {
	return &NegocioRepository{db: db}
}

func (r *NegocioRepository) Create(ctx context.Context, negocio *domain.Negocio) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO negocios (id, nombre, email, categoria_slug, ciudad, barrio, telefono, web, descripcion, estado, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
`,
		negocio.ID, negocio.Nombre, negocio.Email, negocio.CategoriaSlug, negocio.Ciudad, negocio.Barrio,
		negocio.Telefono, negocio.Web, negocio.Descripcion, string(negocio.Estado), negocio.CreatedAt, negocio.UpdatedAt,
	)
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "insert negocio", err)
	}
	return nil
}

func (r *NegocioRepository) GetByID(ctx context.Context, id string) (*domain.Negocio, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, nombre, email, categoria_slug, ciudad, barrio, telefono, web, descripcion, estado, created_at, updated_at
FROM negocios
WHERE id = $1
`, id)

	negocio, err := scanNegocio(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get negocio: %w: id=%s", domain.ErrNegocioNoEncontrado, id)
		}
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "get negocio", err)
	}
	return &negocio, nil
}

func (r *NegocioRepository) Update(ctx context.Context, negocio *domain.Negocio) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE negocios
SET nombre = $2, categoria_slug = $3, ciudad = $4, barrio = $5, telefono = $6, web = $7, descripcion = $8, updated_at = $9
WHERE id = $1
`,
		negocio.ID, negocio.Nombre, negocio.CategoriaSlug, negocio.Ciudad, negocio.Barrio,
		negocio.Telefono, negocio.Web, negocio.Descripcion, negocio.UpdatedAt,
	)
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "update negocio", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "update negocio rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("update negocio: %w: id=%s", domain.ErrNegocioNoEncontrado, negocio.ID)
	}
	return nil
}

func (r *NegocioRepository) SetEstado(ctx context.Context, id string, estado domain.EstadoModeracion) error {
	result, err := r.db.ExecContext(ctx, `
UPDATE negocios
SET estado = $2, updated_at = $3
WHERE id = $1
`, id, string(estado), time.Now().UTC())
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "set negocio estado", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "set negocio estado rows affected", err)
	}
	if rows == 0 {
		return fmt.Errorf("set negocio estado: %w: id=%s", domain.ErrNegocioNoEncontrado, id)
	}
	return nil
}

func (r *NegocioRepository) List(ctx context.Context, filtro domain.FiltroNegocios, estado domain.EstadoModeracion) ([]domain.Negocio, error) {
	query := `
SELECT id, nombre, email, categoria_slug, ciudad, barrio, telefono, web, descripcion, estado, created_at, updated_at
FROM negocios
WHERE estado = $1
`
	args := []interface{}{string(estado)}
	if filtro.CategoriaSlug != "" {
		args = append(args, filtro.CategoriaSlug)
		query += fmt.Sprintf("AND categoria_slug = $%d\n", len(args))
	}
	if filtro.Ciudad != "" {
		args = append(args, filtro.Ciudad)
		query += fmt.Sprintf("AND ciudad = $%d\n", len(args))
	}
	if filtro.Barrio != "" {
		args = append(args, filtro.Barrio)
		query += fmt.Sprintf("AND barrio = $%d\n", len(args))
	}
	query += "ORDER BY nombre ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "list negocios", err)
	}
	defer rows.Close()

	out := make([]domain.Negocio, 0)
	for rows.Next() {
		negocio, err := scanNegocio(rows)
		if err != nil {
			return nil, domain.WrapError(domain.ErrAlmacenamiento, "scan negocio", err)
		}
		out = append(out, negocio)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.WrapError(domain.ErrAlmacenamiento, "iterate negocios", err)
	}
	return out, nil
}

func (r *NegocioRepository) SaveToken(ctx context.Context, negocioID, tokenDigest string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO negocio_tokens (token_digest, negocio_id, created_at)
VALUES ($1,$2,$3)
`, tokenDigest, negocioID, time.Now().UTC())
	if err != nil {
		return domain.WrapError(domain.ErrAlmacenamiento, "save token", err)
	}
	return nil
}

func (r *NegocioRepository) NegocioIDByToken(ctx context.Context, tokenDigest string) (string, error) {
	var negocioID string
	err := r.db.QueryRowContext(ctx, `
SELECT negocio_id
FROM negocio_tokens
WHERE token_digest = $1
`, tokenDigest).Scan(&negocioID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("resolve token: %w", domain.ErrUnauthorized)
		}
		return "", domain.WrapError(domain.ErrAlmacenamiento, "resolve token", err)
	}
	return negocioID, nil
}

type negocioScanner interface {
	Scan(dest ...interface{}) error
}

func scanNegocio(row negocioScanner) (domain.Negocio, error) {
	var negocio domain.Negocio
	var estado string
	err := row.Scan(
		&negocio.ID,
		&negocio.Nombre,
		&negocio.Email,
		&negocio.CategoriaSlug,
		&negocio.Ciudad,
		&negocio.Barrio,
		&negocio.Telefono,
		&negocio.Web,
		&negocio.Descripcion,
		&estado,
		&negocio.CreatedAt,
		&negocio.UpdatedAt,
	)
	if err != nil {
		return domain.Negocio{}, err
	}
	negocio.Estado = domain.EstadoModeracion(estado)
	return negocio, nil
}
