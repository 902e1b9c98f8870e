package handler

import (
	"net/http"

	"agrogestor/internal/infra"
	"agrogestor/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	svc         service.ReporteService
	storagePath string
}

func NewReportesHandler(svc service.ReporteService, storagePath string) *ReportesHandler {
	return &ReportesHandler{svc: svc, storagePath: storagePath}
}

func (h *ReportesHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportesHandler) Reporte(c *gin.Context) {
	resp, err := h.svc.Reporte(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarPDF renders the current report sheet as a PDF and streams it back.
func (h *ReportesHandler) DescargarPDF(c *gin.Context) {
	reporte, err := h.svc.Reporte(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	path, err := infra.GenerarReportePDF(reporte, h.storagePath)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.FileAttachment(path, "reporte_agrogestor.pdf")
}
