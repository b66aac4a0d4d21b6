package domain

import "time"

type EstadoSeguimiento string

const (
	SeguimientoPendiente  EstadoSeguimiento = "pendiente"
	SeguimientoRegistrado EstadoSeguimiento = "registrado"
	SeguimientoActivo     EstadoSeguimiento = "activo"
	SeguimientoRechazado  EstadoSeguimiento = "rechazado"
)

func (e EstadoSeguimiento) Valido() bool {
	switch e {
	case SeguimientoPendiente, SeguimientoRegistrado, SeguimientoActivo, SeguimientoRechazado:
		return true
	default:
		return false
	}
}

// RegistroSeguimiento tracks one business's registration progress on one
// directory. At most one record exists per (negocio, directorio) pair; any
// of the four states is always a legal target (the dashboard exposes an
// explicit unmark action).
type RegistroSeguimiento struct {
	ID             string            `json:"id"`
	NegocioID      string            `json:"negocioId"`
	DirectorioSlug string            `json:"directorioSlug"`
	Estado         EstadoSeguimiento `json:"estado"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// StatsSeguimiento is the per-business aggregate the worker maintains from
// tracking events.
type StatsSeguimiento struct {
	NegocioID   string    `json:"negocioId"`
	Pendientes  int       `json:"pendientes"`
	Registrados int       `json:"registrados"`
	Activos     int       `json:"activos"`
	Rechazados  int       `json:"rechazados"`
	Total       int       `json:"total"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
