package domain

type Prioridad string

const (
	PrioridadCritica Prioridad = "critica"
	PrioridadAlta    Prioridad = "alta"
	PrioridadMedia   Prioridad = "media"
	PrioridadBaja    Prioridad = "baja"
)

// Recomendacion pairs a catalog directory with the score computed for a
// concrete business profile. Derived, never persisted.
type Recomendacion struct {
	Directorio Directorio `json:"directorio"`
	Puntuacion int        `json:"puntuacion"`
	Prioridad  Prioridad  `json:"prioridad"`
	Razones    []string   `json:"razones"`
}

type ResumenRecomendaciones struct {
	Total    int             `json:"total"`
	Criticas []Recomendacion `json:"criticas"`
	Altas    []Recomendacion `json:"altas"`
	Medias   []Recomendacion `json:"medias"`
	Bajas    []Recomendacion `json:"bajas"`
}
