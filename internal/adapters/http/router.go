package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Freskan23/vistoenmaps-api/internal/config"
	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/ports"
	"github.com/Freskan23/vistoenmaps-api/internal/observability/metrics"
)

type Router struct {
	cfg config.Config

	recomendador ports.RecommendationService
	seguimiento  ports.TrackingService
	negocios     ports.BusinessService
	moderacion   ports.ModerationService
	catalog      ports.DirectoryCatalog
	repo         ports.BusinessRepository
	metrics      *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	recomendador ports.RecommendationService,
	seguimiento ports.TrackingService,
	negocios ports.BusinessService,
	moderacion ports.ModerationService,
	catalog ports.DirectoryCatalog,
	repo ports.BusinessRepository,
	serverMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:          cfg,
		recomendador: recomendador,
		seguimiento:  seguimiento,
		negocios:     negocios,
		moderacion:   moderacion,
		catalog:      catalog,
		repo:         repo,
		metrics:      serverMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", rt.healthz)
	mux.HandleFunc("/v1/directorios", rt.listDirectorios)
	mux.HandleFunc("/v1/categorias", rt.listCategorias)
	mux.HandleFunc("/v1/negocios", rt.negociosCollection)
	mux.HandleFunc("/v1/recomendaciones", rt.getRecomendaciones)
	mux.HandleFunc("/v1/recomendaciones/resumen", rt.getResumenRecomendaciones)
	mux.HandleFunc("/v1/seguimiento", rt.listSeguimiento)
	mux.HandleFunc("/v1/seguimiento/stats", rt.getStatsSeguimiento)
	mux.HandleFunc("/v1/seguimiento/", rt.putSeguimiento)
	mux.HandleFunc("/v1/perfil", rt.perfil)
	mux.HandleFunc("/v1/admin/negocios", rt.adminListNegocios)
	mux.HandleFunc("/v1/admin/negocios/export", rt.adminExportNegocios)
	mux.HandleFunc("/v1/admin/negocios/", rt.adminModerarNegocio)

	var handler http.Handler = mux
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
		handler = rt.metrics.Middleware("api", handler)
	}
	if rt.cfg.APIMaxInFlight > 0 {
		handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, 50*time.Millisecond)
	}
	if rt.cfg.APIRateLimitRPS > 0 {
		handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) listDirectorios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	categoria := strings.TrimSpace(r.URL.Query().Get("categoria"))
	tipo := strings.TrimSpace(r.URL.Query().Get("tipo"))
	soloGratis := r.URL.Query().Get("gratis") == "true"

	out := make([]domain.Directorio, 0)
	for _, directorio := range rt.catalog.Directorios() {
		if categoria != "" && string(directorio.Categoria) != categoria {
			continue
		}
		if tipo != "" && string(directorio.Tipo) != tipo {
			continue
		}
		if soloGratis && !directorio.Gratis {
			continue
		}
		out = append(out, directorio)
	}
	writeJSON(w, http.StatusOK, map[string]any{"directorios": out, "total": len(out)})
}

func (rt *Router) listCategorias(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	categorias := rt.catalog.Categorias()
	writeJSON(w, http.StatusOK, map[string]any{"categorias": categorias, "total": len(categorias)})
}

func (rt *Router) negociosCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rt.browseNegocios(w, r)
	case http.MethodPost:
		rt.registerNegocio(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) browseNegocios(w http.ResponseWriter, r *http.Request) {
	filtro := domain.FiltroNegocios{
		CategoriaSlug: strings.TrimSpace(r.URL.Query().Get("categoria")),
		Ciudad:        strings.TrimSpace(r.URL.Query().Get("ciudad")),
		Barrio:        strings.TrimSpace(r.URL.Query().Get("barrio")),
	}

	negocios, err := rt.negocios.Browse(r.Context(), filtro)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"negocios": negocios, "total": len(negocios)})
}

func (rt *Router) registerNegocio(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Nombre        string `json:"nombre"`
		Email         string `json:"email"`
		CategoriaSlug string `json:"categoriaSlug"`
		Ciudad        string `json:"ciudad"`
		Barrio        string `json:"barrio"`
		Telefono      string `json:"telefono"`
		Web           string `json:"web"`
		Descripcion   string `json:"descripcion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	negocio, token, err := rt.negocios.Register(r.Context(), &domain.Negocio{
		Nombre:        req.Nombre,
		Email:         req.Email,
		CategoriaSlug: req.CategoriaSlug,
		Ciudad:        req.Ciudad,
		Barrio:        req.Barrio,
		Telefono:      req.Telefono,
		Web:           req.Web,
		Descripcion:   req.Descripcion,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"negocio": negocio, "token": token})
}

func (rt *Router) getRecomendaciones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	negocio, ok := rt.authenticatedNegocio(w, r)
	if !ok {
		return
	}

	start := time.Now()
	recomendaciones := rt.recomendador.Score(negocio.CategoriaSlug, negocio.Ciudad)
	if rt.metrics != nil {
		rt.metrics.RecordRecommendation("api", "recomendaciones", len(recomendaciones), time.Since(start))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"recomendaciones": recomendaciones,
		"total":           len(recomendaciones),
	})
}

func (rt *Router) getResumenRecomendaciones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	negocio, ok := rt.authenticatedNegocio(w, r)
	if !ok {
		return
	}

	start := time.Now()
	resumen := rt.recomendador.Summarize(negocio.CategoriaSlug, negocio.Ciudad)
	if rt.metrics != nil {
		rt.metrics.RecordRecommendation("api", "resumen", resumen.Total, time.Since(start))
	}
	writeJSON(w, http.StatusOK, resumen)
}

func (rt *Router) listSeguimiento(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	negocioID, ok := rt.authenticatedNegocioID(w, r)
	if !ok {
		return
	}

	registros, err := rt.seguimiento.List(r.Context(), negocioID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"seguimiento": registros, "total": len(registros)})
}

func (rt *Router) putSeguimiento(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/v1/seguimiento/")
	if slug == "" || strings.Contains(slug, "/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "directorio slug is required"})
		return
	}

	negocioID, ok := rt.authenticatedNegocioID(w, r)
	if !ok {
		return
	}

	var req struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	registro, err := rt.seguimiento.SetState(r.Context(), negocioID, slug, domain.EstadoSeguimiento(req.Estado))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, registro)
}

func (rt *Router) getStatsSeguimiento(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	negocioID, ok := rt.authenticatedNegocioID(w, r)
	if !ok {
		return
	}

	stats, err := rt.seguimiento.Stats(r.Context(), negocioID)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (rt *Router) perfil(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		rt.getPerfil(w, r)
	case http.MethodPut:
		rt.putPerfil(w, r)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	}
}

func (rt *Router) getPerfil(w http.ResponseWriter, r *http.Request) {
	negocio, ok := rt.authenticatedNegocio(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, negocio)
}

func (rt *Router) putPerfil(w http.ResponseWriter, r *http.Request) {
	negocioID, ok := rt.authenticatedNegocioID(w, r)
	if !ok {
		return
	}

	var req struct {
		Nombre        string `json:"nombre"`
		CategoriaSlug string `json:"categoriaSlug"`
		Ciudad        string `json:"ciudad"`
		Barrio        string `json:"barrio"`
		Telefono      string `json:"telefono"`
		Web           string `json:"web"`
		Descripcion   string `json:"descripcion"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	negocio, err := rt.negocios.UpdateProfile(r.Context(), &domain.Negocio{
		ID:            negocioID,
		Nombre:        req.Nombre,
		CategoriaSlug: req.CategoriaSlug,
		Ciudad:        req.Ciudad,
		Barrio:        req.Barrio,
		Telefono:      req.Telefono,
		Web:           req.Web,
		Descripcion:   req.Descripcion,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, negocio)
}

func (rt *Router) adminListNegocios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}

	estado := domain.EstadoModeracion(strings.TrimSpace(r.URL.Query().Get("estado")))
	if estado == "" {
		estado = domain.ModeracionPendiente
	}

	negocios, err := rt.moderacion.ListByEstado(r.Context(), estado)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"negocios": negocios, "total": len(negocios)})
}

func (rt *Router) adminModerarNegocio(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/admin/negocios/")
	id, action, found := strings.Cut(rest, "/")
	if !found || id == "" || action != "moderar" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	var req struct {
		Estado string `json:"estado"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	negocio, err := rt.moderacion.Moderate(r.Context(), id, domain.EstadoModeracion(req.Estado))
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, negocio)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
