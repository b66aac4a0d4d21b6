package httpadapter

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Freskan23/vistoenmaps-api/internal/config"
)

func TestAdminExportRequiresAdminToken(t *testing.T) {
	handler := newTestHandler(config.Config{AdminAPIToken: "admin-secreto"})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/negocios/export", nil)
	req.Header.Set("Authorization", "Bearer "+testToken)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-admin token, got %d", res.Code)
	}
}

func TestAdminExportProducesWorkbook(t *testing.T) {
	handler := newTestHandler(config.Config{AdminAPIToken: "admin-secreto"})

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/negocios/export", nil)
	req.Header.Set("Authorization", "Bearer admin-secreto")
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if ct := res.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Fatalf("expected xlsx content type, got %q", ct)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(res.Body.Bytes()))
	if err != nil {
		t.Fatalf("open exported workbook: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows("Negocios")
	if err != nil {
		t.Fatalf("read sheet rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 negocios, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Nombre" {
		t.Fatalf("unexpected header row %v", rows[0])
	}

	var ids []string
	for _, row := range rows[1:] {
		ids = append(ids, row[0])
	}
	for _, want := range []string{"negocio-1", "negocio-2"} {
		found := false
		for _, id := range ids {
			if id == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s in export, got ids %v", want, ids)
		}
	}
}
