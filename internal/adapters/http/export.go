package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Freskan23/vistoenmaps-api/internal/core/domain"
)

var exportEstados = []domain.EstadoModeracion{
	domain.ModeracionPendiente,
	domain.ModeracionAprobado,
	domain.ModeracionRechazado,
}

var exportHeader = []string{
	"ID", "Nombre", "Email", "Categoría", "Ciudad", "Barrio",
	"Estado", "Directorios activos", "Directorios registrados",
	"Directorios pendientes", "Alta",
}

// adminExportNegocios streams every business account with its citation
// progress as an XLSX workbook.
func (rt *Router) adminExportNegocios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	if !rt.requireAdmin(w, r) {
		return
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "Negocios"
	workbook.SetSheetName(workbook.GetSheetName(0), sheet)
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = workbook.SetCellValue(sheet, cell, title)
	}

	row := 2
	for _, estado := range exportEstados {
		negocios, err := rt.moderacion.ListByEstado(r.Context(), estado)
		if err != nil {
			respondError(w, err)
			return
		}
		for _, negocio := range negocios {
			stats, err := rt.seguimiento.Stats(r.Context(), negocio.ID)
			if err != nil {
				respondError(w, err)
				return
			}
			values := []any{
				negocio.ID, negocio.Nombre, negocio.Email, negocio.CategoriaSlug,
				negocio.Ciudad, negocio.Barrio, string(negocio.Estado),
				stats.Activos, stats.Registrados, stats.Pendientes,
				negocio.CreatedAt.Format(time.DateOnly),
			}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				_ = workbook.SetCellValue(sheet, cell, value)
			}
			row++
		}
	}

	filename := fmt.Sprintf("negocios-%s.xlsx", time.Now().UTC().Format(time.DateOnly))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := workbook.Write(w); err != nil {
		// headers are already sent at this point, nothing to respond with
		slog.Error("xlsx_export_write",
			"request_id", requestIDFromContext(r.Context()),
			"error", err,
		)
	}
}
