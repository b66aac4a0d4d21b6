package usecase

import (
	"sort"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/ports"
)

// Score bonuses and tier thresholds. Thresholds are inclusive on the high
// side: a score exactly at a cutoff lands in the more urgent tier.
const (
	bonusCategoria       = 30
	bonusCiudad          = 25
	bonusAlcanceNacional = 20
	bonusGratis          = 10
	bonusResenas         = 10

	umbralCritica = 120
	umbralAlta    = 95
	umbralMedia   = 70
)

const (
	razonCategoria = "coincide con tu categoría"
	razonCiudad    = "relevante para tu ciudad"
	razonAlcance   = "alcance nacional"
	razonGratis    = "gratis"
	razonResenas   = "permite reseñas"
)

// RecommendationUseCase ranks every catalog directory for a business profile.
// It only reads the injected immutable catalog, so it is safe to call from
// any number of concurrent requests.
type RecommendationUseCase struct {
	catalog ports.DirectoryCatalog
}

func NewRecommendationUseCase(catalog ports.DirectoryCatalog) *RecommendationUseCase {
	return &RecommendationUseCase{catalog: catalog}
}

// Score returns exactly one recommendation per catalog directory, ordered by
// score descending, then static popularity descending, then slug ascending.
// Empty category or city never fail; they just earn fewer bonuses.
func (uc *RecommendationUseCase) Score(categoriaSlug, ciudad string) []domain.Recomendacion {
	directorios := uc.catalog.Directorios()
	out := make([]domain.Recomendacion, 0, len(directorios))

	grupo, tieneGrupo := uc.catalog.GrupoDe(categoriaSlug)

	for _, dir := range directorios {
		puntuacion := dir.Popularidad
		razones := make([]string, 0, 4)

		if tieneGrupo && dir.Categoria == grupo {
			puntuacion += bonusCategoria
			razones = append(razones, razonCategoria)
		}

		if dir.AlcanceAmplio() {
			puntuacion += bonusAlcanceNacional
			razones = append(razones, razonAlcance)
		} else if ciudad != "" {
			puntuacion += bonusCiudad
			razones = append(razones, razonCiudad)
		}

		if dir.Gratis {
			puntuacion += bonusGratis
			razones = append(razones, razonGratis)
		}
		if dir.PermiteResenas {
			puntuacion += bonusResenas
			razones = append(razones, razonResenas)
		}

		out = append(out, domain.Recomendacion{
			Directorio: dir,
			Puntuacion: puntuacion,
			Prioridad:  prioridadPara(puntuacion),
			Razones:    razones,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Puntuacion != out[j].Puntuacion {
			return out[i].Puntuacion > out[j].Puntuacion
		}
		if out[i].Directorio.Popularidad != out[j].Directorio.Popularidad {
			return out[i].Directorio.Popularidad > out[j].Directorio.Popularidad
		}
		return out[i].Directorio.Slug < out[j].Directorio.Slug
	})

	return out
}

// Summarize groups the scored list by priority tier. The four buckets
// partition the Score output and inherit its ordering.
func (uc *RecommendationUseCase) Summarize(categoriaSlug, ciudad string) *domain.ResumenRecomendaciones {
	scored := uc.Score(categoriaSlug, ciudad)

	resumen := &domain.ResumenRecomendaciones{
		Total:    len(scored),
		Criticas: make([]domain.Recomendacion, 0),
		Altas:    make([]domain.Recomendacion, 0),
		Medias:   make([]domain.Recomendacion, 0),
		Bajas:    make([]domain.Recomendacion, 0),
	}

	for _, rec := range scored {
		switch rec.Prioridad {
		case domain.PrioridadCritica:
			resumen.Criticas = append(resumen.Criticas, rec)
		case domain.PrioridadAlta:
			resumen.Altas = append(resumen.Altas, rec)
		case domain.PrioridadMedia:
			resumen.Medias = append(resumen.Medias, rec)
		default:
			resumen.Bajas = append(resumen.Bajas, rec)
		}
	}

	return resumen
}

func prioridadPara(puntuacion int) domain.Prioridad {
	switch {
	case puntuacion >= umbralCritica:
		return domain.PrioridadCritica
	case puntuacion >= umbralAlta:
		return domain.PrioridadAlta
	case puntuacion >= umbralMedia:
		return domain.PrioridadMedia
	default:
		return domain.PrioridadBaja
	}
}
