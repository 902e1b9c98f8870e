package router

import (
	"time"

	"agrogestor/internal/config"
	"agrogestor/internal/handler"
	"agrogestor/internal/middleware"
	"agrogestor/internal/repository"
	"agrogestor/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository
func New(cfg *config.Config, insumoRepo repository.InsumoRepository, dietaRepo repository.DietaRepository, loteRepo repository.LoteRepository, movimientoRepo repository.MovimientoRepository, pesajeRepo repository.PesajeRepository, alimentacionRepo repository.AlimentacionRepository) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	insumoSvc := service.NewInsumoService(insumoRepo, movimientoRepo)
	dietaSvc := service.NewDietaService(dietaRepo, insumoRepo)
	loteSvc := service.NewLoteService(loteRepo, dietaRepo, pesajeRepo, alimentacionRepo)
	reporteSvc := service.NewReporteService(insumoRepo, dietaRepo, loteRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	insumosH := handler.NewInsumosHandler(insumoSvc)
	dietasH := handler.NewDietasHandler(dietaSvc)
	lotesH := handler.NewLotesHandler(loteSvc)
	reportesH := handler.NewReportesHandler(reporteSvc, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health())

	v1 := r.Group("/v1")
	{
		insumos := v1.Group("/insumos")
		{
			insumos.POST("", insumosH.Registrar)
			insumos.GET("", insumosH.Listar)
			insumos.GET("/alertas", insumosH.Alertas)
			insumos.GET("/:id", insumosH.ObtenerPorID)
			insumos.PUT("/:id", insumosH.Actualizar)
			insumos.DELETE("/:id", insumosH.Eliminar)
			insumos.POST("/:id/ajustar", insumosH.AjustarStock)
			insumos.GET("/:id/movimientos", insumosH.Movimientos)
		}

		dietas := v1.Group("/dietas")
		{
			dietas.POST("", dietasH.Guardar)
			dietas.GET("", dietasH.Listar)
			dietas.GET("/:id", dietasH.ObtenerPorID)
			dietas.PUT("/:id", dietasH.Actualizar)
			dietas.DELETE("/:id", dietasH.Eliminar)
		}

		lotes := v1.Group("/lotes")
		{
			lotes.POST("", lotesH.Crear)
			lotes.GET("", lotesH.Listar)
			lotes.GET("/:id", lotesH.ObtenerPorID)
			lotes.PUT("/:id", lotesH.Actualizar)
			lotes.DELETE("/:id", lotesH.Eliminar)
			lotes.GET("/:id/proyeccion", lotesH.Proyeccion)
			lotes.POST("/:id/pesajes", lotesH.RegistrarPesaje)
			lotes.GET("/:id/pesajes", lotesH.Pesajes)
			lotes.POST("/:id/alimentacion", lotesH.RegistrarAlimentacion)
			lotes.GET("/:id/alimentacion", lotesH.Alimentacion)
		}

		v1.GET("/dashboard", reportesH.Dashboard)
		v1.GET("/reportes", reportesH.Reporte)
		v1.GET("/reportes/pdf", reportesH.DescargarPDF)
	}

	return r
}
