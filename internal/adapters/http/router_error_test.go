package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Freskan23/vistoenmaps-api/internal/config"
	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
	"github.com/Freskan23/vistoenmaps-api/internal/core/usecase"
)

func newErrorTestHandler(trackErr, registerErr error) http.Handler {
	negocios := testNegocios()
	return NewRouter(
		config.Config{},
		recFake{},
		&trackFake{setErr: trackErr},
		&bizFake{negocios: negocios, registerErr: registerErr},
		&modFake{negocios: negocios},
		catalogFake{directorios: testDirectorios()},
		tokenRepoFake{tokens: map[string]string{
			usecase.TokenDigest(testToken): "negocio-1",
		}},
		nil,
	).Handler()
}

func TestPutSeguimientoMapsInvalidInputTo400(t *testing.T) {
	handler := newErrorTestHandler(
		domain.WrapError(domain.ErrEntradaInvalida, "set seguimiento", errors.New("estado desconocido")),
		nil,
	)

	payload, _ := json.Marshal(map[string]string{"estado": "inventado"})
	req := httptest.NewRequest(http.MethodPut, "/v1/seguimiento/google-business-profile", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+testToken)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestPutSeguimientoMapsUnknownDirectoryTo404(t *testing.T) {
	handler := newErrorTestHandler(
		domain.WrapError(domain.ErrDirectorioNoEncontrado, "set seguimiento", errors.New("slug=no-existe")),
		nil,
	)

	payload, _ := json.Marshal(map[string]string{"estado": "activo"})
	req := httptest.NewRequest(http.MethodPut, "/v1/seguimiento/no-existe", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+testToken)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.Code)
	}
}

func TestRegisterMapsStorageFailureTo500(t *testing.T) {
	handler := newErrorTestHandler(
		nil,
		domain.WrapError(domain.ErrAlmacenamiento, "create negocio", errors.New("connection refused")),
	)

	payload, _ := json.Marshal(map[string]string{"nombre": "X", "email": "x@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/v1/negocios", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.Code)
	}
}

func TestPutSeguimientoMapsTemporaryFailureTo503(t *testing.T) {
	handler := newErrorTestHandler(
		domain.WrapError(domain.ErrTemporal, "set seguimiento", errors.New("circuit open")),
		nil,
	)

	payload, _ := json.Marshal(map[string]string{"estado": "activo"})
	req := httptest.NewRequest(http.MethodPut, "/v1/seguimiento/google-business-profile", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+testToken)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", res.Code)
	}
}

func TestUnknownTokenReturns401(t *testing.T) {
	handler := newErrorTestHandler(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/seguimiento", nil)
	req.Header.Set("Authorization", "Bearer token-falso")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}
