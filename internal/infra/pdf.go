package infra

// pdf.go — report sheet export using go-pdf/fpdf.
// Renders the on-demand report as a single A4 page (spilling onto more pages
// for large herds): summary figures, population by stage, per-lot daily cost
// table, dieta cost variation and the stock risk list.
//
// The output file is saved to storagePath/reporte_{fecha}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"agrogestor/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerarReportePDF writes the report sheet to disk and returns the path of
// the generated file. storagePath is created if needed.
func GenerarReportePDF(reporte *dto.ReporteResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "AgroGestor", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Reporte de produccion y costos", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Summary figures ───────────────────────────────────────────────────────
	resumen := [][2]string{
		{"Total de animales", fmt.Sprintf("%d", reporte.TotalAnimales)},
		{"Valor de inventario", "$" + reporte.ValorInventario.StringFixed(2)},
		{"Costo diario total", "$" + reporte.CostoDiarioTotal.StringFixed(2)},
		{"Costo promedio por cabeza", "$" + reporte.CostoPromedioCabeza.StringFixed(2)},
		{"Costo promedio de dietas", "$" + reporte.CostoPromedioDietas.StringFixed(2) + "/kg"},
		{"Dietas activas", fmt.Sprintf("%d", reporte.DietasActivas)},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, fila := range resumen {
		pdf.CellFormat(contentW*0.5, 6, fila[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW*0.5, 6, fila[1], "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
	}
	pdf.Ln(4)

	// ── Population by stage ───────────────────────────────────────────────────
	sectionTitle(pdf, contentW, "Poblacion por etapa")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.5, 6, "Etapa", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Cabezas", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "%", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, fila := range reporte.PoblacionPorEtapa {
		pdf.CellFormat(contentW*0.5, 5, fila.Etapa, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, fmt.Sprintf("%d", fila.Cabezas), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, fila.Porcentaje.StringFixed(1)+"%", "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Per-lot daily cost ────────────────────────────────────────────────────
	sectionTitle(pdf, contentW, "Costo diario por lote")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.28, 6, "Lote", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.12, 6, "Cabezas", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.24, 6, "Dieta", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.18, 6, "Consumo kg/dia", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.18, 6, "Costo/dia", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, fila := range reporte.CostosPorLote {
		dieta := "Sin dieta"
		if fila.Dieta != nil {
			dieta = *fila.Dieta
		}
		pdf.CellFormat(contentW*0.28, 5, recortar(fila.Nombre, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.12, 5, fmt.Sprintf("%d", fila.Cabezas), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.24, 5, recortar(dieta, 22), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.18, 5, fila.ConsumoDiarioKg.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.18, 5, "$"+fila.CostoDiario.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Dieta cost variation ──────────────────────────────────────────────────
	sectionTitle(pdf, contentW, "Variacion de costo entre dietas")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.5, 6, "Dieta", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Costo/kg", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "vs promedio", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, fila := range reporte.VariacionDietas {
		signo := "+"
		if fila.Variacion.IsNegative() {
			signo = ""
		}
		pdf.CellFormat(contentW*0.5, 5, recortar(fila.Nombre, 46), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, "$"+fila.CostoKg.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, signo+fila.Variacion.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Stock risk list ───────────────────────────────────────────────────────
	sectionTitle(pdf, contentW, "Insumos en riesgo")
	if len(reporte.InsumosEnRiesgo) == 0 {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(contentW, 5, "Sin alertas de stock.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(contentW*0.4, 6, "Insumo", "B", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.2, 6, "Stock", "B", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.2, 6, "Minimo", "B", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.2, 6, "Nivel", "B", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		for _, fila := range reporte.InsumosEnRiesgo {
			pdf.CellFormat(contentW*0.4, 5, recortar(fila.Nombre, 38), "", 0, "L", false, 0, "")
			pdf.CellFormat(contentW*0.2, 5, fila.CantidadActual.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(contentW*0.2, 5, fila.StockMinimo.StringFixed(2), "", 0, "R", false, 0, "")
			pdf.CellFormat(contentW*0.2, 5, fila.Nivel, "", 1, "R", false, 0, "")
		}
	}

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Generado por AgroGestor", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}

func sectionTitle(pdf *fpdf.Fpdf, contentW float64, titulo string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 7, titulo, "", 1, "L", false, 0, "")
}

// recortar truncates long names so table columns do not overflow. Operates on
// runes so multibyte names never get cut mid-character.
func recortar(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-1]) + "..."
	}
	return s
}
