package httpadapter

import (
	"net/http"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrEntradaInvalida):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case domain.IsKind(err, domain.ErrNegocioNoEncontrado),
		domain.IsKind(err, domain.ErrDirectorioNoEncontrado):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporal):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
