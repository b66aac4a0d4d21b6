package httpadapter

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/usecase"
)

// authenticatedNegocioID resolves the caller's bearer token to a business id.
// On failure it writes the 401 response itself and reports false.
func (rt *Router) authenticatedNegocioID(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := bearerToken(r.Header.Get("Authorization"))
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return "", false
	}

	negocioID, err := rt.repo.NegocioIDByToken(r.Context(), usecase.TokenDigest(token))
	if err != nil {
		if domain.IsKind(err, domain.ErrUnauthorized) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return "", false
		}
		respondError(w, err)
		return "", false
	}
	return negocioID, true
}

func (rt *Router) authenticatedNegocio(w http.ResponseWriter, r *http.Request) (*domain.Negocio, bool) {
	negocioID, ok := rt.authenticatedNegocioID(w, r)
	if !ok {
		return nil, false
	}

	negocio, err := rt.negocios.Profile(r.Context(), negocioID)
	if err != nil {
		respondError(w, err)
		return nil, false
	}
	return negocio, true
}

// requireAdmin gates the moderation surface. An unset admin token disables
// the surface entirely rather than leaving it open.
func (rt *Router) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	token := bearerToken(r.Header.Get("Authorization"))
	if rt.cfg.AdminAPIToken == "" || token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return false
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(rt.cfg.AdminAPIToken)) != 1 {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return false
	}
	return true
}

func bearerToken(headerValue string) string {
	headerValue = strings.TrimSpace(headerValue)
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(headerValue, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(headerValue, bearerPrefix))
}
