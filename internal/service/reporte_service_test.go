package service

import (
	"context"
	"testing"

	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reporteFixture struct {
	svc        ReporteService
	insumoRepo repository.InsumoRepository
	dietaRepo  repository.DietaRepository
	loteRepo   repository.LoteRepository
}

func newReporteFixture() *reporteFixture {
	insumoRepo := repository.NewInsumoRepository()
	dietaRepo := repository.NewDietaRepository()
	loteRepo := repository.NewLoteRepository()
	return &reporteFixture{
		svc:        NewReporteService(insumoRepo, dietaRepo, loteRepo),
		insumoRepo: insumoRepo,
		dietaRepo:  dietaRepo,
		loteRepo:   loteRepo,
	}
}

func (f *reporteFixture) seed(t *testing.T) (engorda, destete uuid.UUID) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.insumoRepo.Create(ctx, &model.Insumo{
		Nombre:         "Maíz molido",
		CantidadActual: decimal.NewFromInt(50),
		StockMinimo:    decimal.NewFromInt(100),
		CostoKg:        decimal.NewFromInt(4),
	}))
	require.NoError(t, f.insumoRepo.Create(ctx, &model.Insumo{
		Nombre:         "Pasta de soya",
		CantidadActual: decimal.NewFromInt(300),
		StockMinimo:    decimal.NewFromInt(80),
		CostoKg:        decimal.NewFromInt(9),
	}))

	dietaEngorda := &model.Dieta{Nombre: "Engorda intensiva", Estado: model.DietaActiva, CostoKg: decimal.NewFromInt(5)}
	dietaDestete := &model.Dieta{Nombre: "Destete suave", Estado: model.DietaArchivada, CostoKg: decimal.NewFromInt(3)}
	require.NoError(t, f.dietaRepo.Create(ctx, dietaEngorda))
	require.NoError(t, f.dietaRepo.Create(ctx, dietaDestete))

	idEngorda := dietaEngorda.ID
	idDestete := dietaDestete.ID
	require.NoError(t, f.loteRepo.Create(ctx, &model.Lote{
		Nombre: "Corral 1", Cabezas: 30,
		PesoPromedio: decimal.NewFromInt(400),
		Etapa:        model.ObjetivoEngorda, Estado: model.LoteActivo,
		IDDieta: &idEngorda,
	}))
	require.NoError(t, f.loteRepo.Create(ctx, &model.Lote{
		Nombre: "Corral 2", Cabezas: 10,
		PesoPromedio: decimal.NewFromInt(120),
		Etapa:        model.ObjetivoDestete, Estado: model.LoteActivo,
		IDDieta: &idDestete,
	}))
	return idEngorda, idDestete
}

func TestDashboard(t *testing.T) {
	f := newReporteFixture()
	f.seed(t)

	resp, err := f.svc.Dashboard(context.Background())
	require.NoError(t, err)

	// Corral 1: 400*0.03*30*5 = 1800; Corral 2: 120*0.03*10*3 = 108
	assert.Equal(t, 40, resp.TotalAnimales)
	assert.Equal(t, "1908.00", resp.CostoDiarioTotal.StringFixed(2))
	assert.Equal(t, "47.70", resp.CostoPromedioCabeza.StringFixed(2))
	assert.Equal(t, 1, resp.DietasActivas)
	require.Len(t, resp.InsumosEnRiesgo, 1)
	assert.Equal(t, "Maíz molido", resp.InsumosEnRiesgo[0].Nombre)
}

func TestReporteCompleto(t *testing.T) {
	f := newReporteFixture()
	f.seed(t)

	resp, err := f.svc.Reporte(context.Background())
	require.NoError(t, err)

	// Inventario: 50*4 + 300*9 = 2900
	assert.Equal(t, "2900.00", resp.ValorInventario.StringFixed(2))
	assert.Equal(t, "1908.00", resp.CostoDiarioTotal.StringFixed(2))
	// (5 + 3) / 2 = 4
	assert.Equal(t, "4.00", resp.CostoPromedioDietas.StringFixed(2))

	require.Len(t, resp.PoblacionPorEtapa, 2)
	assert.Equal(t, model.ObjetivoEngorda, resp.PoblacionPorEtapa[0].Etapa)
	assert.Equal(t, 30, resp.PoblacionPorEtapa[0].Cabezas)
	assert.Equal(t, "75.0", resp.PoblacionPorEtapa[0].Porcentaje.StringFixed(1))

	require.Len(t, resp.CostosPorLote, 2)
	assert.Equal(t, "1800.00", resp.CostosPorLote[0].CostoDiario.StringFixed(2))

	// Sorted most expensive first, variation against the rounded mean.
	require.Len(t, resp.VariacionDietas, 2)
	assert.Equal(t, "Engorda intensiva", resp.VariacionDietas[0].Nombre)
	assert.Equal(t, "1.00", resp.VariacionDietas[0].Variacion.StringFixed(2))
	assert.Equal(t, "-1.00", resp.VariacionDietas[1].Variacion.StringFixed(2))

	// Inventory ranked by invested value, highest first.
	require.Len(t, resp.InventarioPorValor, 2)
	assert.Equal(t, "Pasta de soya", resp.InventarioPorValor[0].Nombre)
}

func TestVariacionContraPromedioSinRedondear(t *testing.T) {
	f := newReporteFixture()
	ctx := context.Background()

	// Mean = 1.005: rounding it first would report zero variation for the
	// expensive dieta. Against the exact mean both sides show 0.01.
	require.NoError(t, f.dietaRepo.Create(ctx, &model.Dieta{
		Nombre: "Barata", Estado: model.DietaActiva, CostoKg: decimal.RequireFromString("1.00"),
	}))
	require.NoError(t, f.dietaRepo.Create(ctx, &model.Dieta{
		Nombre: "Cara", Estado: model.DietaActiva, CostoKg: decimal.RequireFromString("1.01"),
	}))

	resp, err := f.svc.Reporte(ctx)
	require.NoError(t, err)
	require.Len(t, resp.VariacionDietas, 2)
	assert.Equal(t, "Cara", resp.VariacionDietas[0].Nombre)
	assert.Equal(t, "0.01", resp.VariacionDietas[0].Variacion.StringFixed(2))
	assert.Equal(t, "-0.01", resp.VariacionDietas[1].Variacion.StringFixed(2))
}

func TestReporteIdempotente(t *testing.T) {
	f := newReporteFixture()
	f.seed(t)
	ctx := context.Background()

	primero, err := f.svc.Reporte(ctx)
	require.NoError(t, err)
	segundo, err := f.svc.Reporte(ctx)
	require.NoError(t, err)
	assert.Equal(t, primero, segundo)
}

func TestReporteSinDatos(t *testing.T) {
	f := newReporteFixture()

	resp, err := f.svc.Reporte(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalAnimales)
	assert.Equal(t, "0.00", resp.CostoDiarioTotal.StringFixed(2))
	// Empty herd and no dietas: averages report 0.00, never a division error.
	assert.Equal(t, "0.00", resp.CostoPromedioCabeza.StringFixed(2))
	assert.Equal(t, "0.00", resp.CostoPromedioDietas.StringFixed(2))
	assert.Empty(t, resp.PoblacionPorEtapa)
	assert.Empty(t, resp.CostosPorLote)
	assert.Empty(t, resp.InsumosEnRiesgo)
}

func TestReporteReflejaCambios(t *testing.T) {
	f := newReporteFixture()
	_, idDestete := f.seed(t)
	ctx := context.Background()

	antes, err := f.svc.Reporte(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1908.00", antes.CostoDiarioTotal.StringFixed(2))

	// Removing a dieta degrades its lotes to zero cost on the next read.
	require.NoError(t, f.dietaRepo.Delete(ctx, idDestete))

	despues, err := f.svc.Reporte(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1800.00", despues.CostoDiarioTotal.StringFixed(2))
}
