package domain

import "time"

type EstadoModeracion string

const (
	ModeracionPendiente EstadoModeracion = "pendiente"
	ModeracionAprobado  EstadoModeracion = "aprobado"
	ModeracionRechazado EstadoModeracion = "rechazado"
)

func (e EstadoModeracion) Valido() bool {
	switch e {
	case ModeracionPendiente, ModeracionAprobado, ModeracionRechazado:
		return true
	default:
		return false
	}
}

// Negocio is a business account. CategoriaSlug and Ciudad may be empty while
// the owner has not completed the profile; the scorer degrades gracefully.
type Negocio struct {
	ID            string           `json:"id"`
	Nombre        string           `json:"nombre"`
	Email         string           `json:"email"`
	CategoriaSlug string           `json:"categoriaSlug,omitempty"`
	Ciudad        string           `json:"ciudad,omitempty"`
	Barrio        string           `json:"barrio,omitempty"`
	Telefono      string           `json:"telefono,omitempty"`
	Web           string           `json:"web,omitempty"`
	Descripcion   string           `json:"descripcion,omitempty"`
	Estado        EstadoModeracion `json:"estado"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// FiltroNegocios narrows public browse listings. Empty fields match
// everything.
type FiltroNegocios struct {
	CategoriaSlug string
	Ciudad        string
	Barrio        string
}
