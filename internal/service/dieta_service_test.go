package service

import (
	"context"
	"testing"

	"agrogestor/internal/dto"
	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dietaFixture struct {
	svc        DietaService
	insumoSvc  InsumoService
	insumoRepo repository.InsumoRepository
}

func newDietaFixture() *dietaFixture {
	insumoRepo := repository.NewInsumoRepository()
	return &dietaFixture{
		svc:        NewDietaService(repository.NewDietaRepository(), insumoRepo),
		insumoSvc:  NewInsumoService(insumoRepo, repository.NewMovimientoRepository()),
		insumoRepo: insumoRepo,
	}
}

func (f *dietaFixture) seedInsumo(t *testing.T, nombre, costo string) uuid.UUID {
	t.Helper()
	resp, err := f.insumoSvc.Registrar(context.Background(), dto.GuardarInsumoRequest{
		Nombre:         nombre,
		CantidadActual: dto.NewNumero(decimal.NewFromInt(1000)),
		StockMinimo:    dto.NewNumero(decimal.NewFromInt(100)),
		CostoKg:        dto.NewNumero(decimal.RequireFromString(costo)),
	})
	require.NoError(t, err)
	return uuid.MustParse(resp.ID)
}

func lineas(pares ...[2]string) []dto.LineaDietaRequest {
	result := make([]dto.LineaDietaRequest, 0, len(pares))
	for _, p := range pares {
		result = append(result, dto.LineaDietaRequest{
			IDInsumo:   p[0],
			Porcentaje: dto.NewNumero(decimal.RequireFromString(p[1])),
		})
	}
	return result
}

func TestTotalPorcentaje(t *testing.T) {
	total := TotalPorcentaje([]model.DietaInsumo{
		{Porcentaje: decimal.RequireFromString("60")},
		{Porcentaje: decimal.RequireFromString("39.9")},
	})
	assert.Equal(t, "99.9", total.String())
}

func TestGuardarDietaComposicionValida(t *testing.T) {
	f := newDietaFixture()
	a := f.seedInsumo(t, "Maíz molido", "5.5")
	b := f.seedInsumo(t, "Pasta de soya", "12")

	resp, err := f.svc.Guardar(context.Background(), dto.GuardarDietaRequest{
		Nombre:       "Engorda intensiva",
		Objetivo:     model.ObjetivoEngorda,
		Autor:        "MVZ Robles",
		Ingredientes: lineas([2]string{a.String(), "60"}, [2]string{b.String(), "40"}),
	})
	require.NoError(t, err)

	// 5.5*0.60 + 12*0.40 = 3.30 + 4.80 = 8.10
	assert.Equal(t, "8.10", resp.CostoKg.StringFixed(2))
	assert.Equal(t, model.DietaActiva, resp.Estado)
	assert.Equal(t, "MVZ Robles", resp.Autor)
	assert.NotEmpty(t, resp.Fecha)
	require.Len(t, resp.Ingredientes, 2)
	assert.True(t, resp.Ingredientes[0].Encontrado)
	assert.Equal(t, "3.30", resp.Ingredientes[0].CostoAportado.StringFixed(2))
}

func TestGuardarDietaPorcentajeIncompleto(t *testing.T) {
	f := newDietaFixture()
	a := f.seedInsumo(t, "Maíz molido", "5.5")
	b := f.seedInsumo(t, "Pasta de soya", "12")

	_, err := f.svc.Guardar(context.Background(), dto.GuardarDietaRequest{
		Nombre:       "Incompleta",
		Objetivo:     model.ObjetivoEngorda,
		Ingredientes: lineas([2]string{a.String(), "60"}, [2]string{b.String(), "39.9"}),
	})
	assert.True(t, IsValidation(err))
}

func TestGuardarDietaUnSoloInsumoAlCien(t *testing.T) {
	f := newDietaFixture()
	a := f.seedInsumo(t, "Heno de alfalfa", "3")

	resp, err := f.svc.Guardar(context.Background(), dto.GuardarDietaRequest{
		Nombre:       "Mantenimiento simple",
		Objetivo:     model.ObjetivoMantenimiento,
		Ingredientes: lineas([2]string{a.String(), "100"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "3.00", resp.CostoKg.StringFixed(2))
}

func TestGuardarDietaSinIngredientes(t *testing.T) {
	f := newDietaFixture()
	_, err := f.svc.Guardar(context.Background(), dto.GuardarDietaRequest{
		Nombre:   "Vacía",
		Objetivo: model.ObjetivoDestete,
	})
	assert.True(t, IsValidation(err))
}

func TestCostoKgEsSnapshot(t *testing.T) {
	f := newDietaFixture()
	ctx := context.Background()
	a := f.seedInsumo(t, "Maíz molido", "5.5")

	resp, err := f.svc.Guardar(ctx, dto.GuardarDietaRequest{
		Nombre:       "Engorda base",
		Objetivo:     model.ObjetivoEngorda,
		Ingredientes: lineas([2]string{a.String(), "100"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "5.50", resp.CostoKg.StringFixed(2))

	// Doubling the ingredient price must not rewrite the saved cost.
	_, err = f.insumoSvc.Actualizar(ctx, a, dto.GuardarInsumoRequest{
		Nombre:         "Maíz molido",
		CantidadActual: dto.NewNumero(decimal.NewFromInt(1000)),
		StockMinimo:    dto.NewNumero(decimal.NewFromInt(100)),
		CostoKg:        dto.NewNumero(decimal.NewFromInt(11)),
	})
	require.NoError(t, err)

	recargada, err := f.svc.ObtenerPorID(ctx, uuid.MustParse(resp.ID))
	require.NoError(t, err)
	assert.Equal(t, "5.50", recargada.CostoKg.StringFixed(2))
}

func TestActualizarDietaRecalculaCosto(t *testing.T) {
	f := newDietaFixture()
	ctx := context.Background()
	a := f.seedInsumo(t, "Maíz molido", "5.5")
	b := f.seedInsumo(t, "Pasta de soya", "12")

	creada, err := f.svc.Guardar(ctx, dto.GuardarDietaRequest{
		Nombre:       "Engorda base",
		Objetivo:     model.ObjetivoEngorda,
		Ingredientes: lineas([2]string{a.String(), "100"}),
	})
	require.NoError(t, err)

	actualizada, err := f.svc.Actualizar(ctx, uuid.MustParse(creada.ID), dto.GuardarDietaRequest{
		Nombre:       "Engorda reforzada",
		Objetivo:     model.ObjetivoEngorda,
		Estado:       model.DietaRevision,
		Ingredientes: lineas([2]string{a.String(), "60"}, [2]string{b.String(), "40"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "8.10", actualizada.CostoKg.StringFixed(2))
	assert.Equal(t, model.DietaRevision, actualizada.Estado)
	// The creation date survives the edit.
	assert.Equal(t, creada.Fecha, actualizada.Fecha)
}

func TestLineaConInsumoEliminado(t *testing.T) {
	f := newDietaFixture()
	ctx := context.Background()
	a := f.seedInsumo(t, "Maíz molido", "5.5")
	b := f.seedInsumo(t, "Pasta de soya", "12")

	creada, err := f.svc.Guardar(ctx, dto.GuardarDietaRequest{
		Nombre:       "Engorda intensiva",
		Objetivo:     model.ObjetivoEngorda,
		Ingredientes: lineas([2]string{a.String(), "60"}, [2]string{b.String(), "40"}),
	})
	require.NoError(t, err)

	require.NoError(t, f.insumoSvc.Eliminar(ctx, b))

	recargada, err := f.svc.ObtenerPorID(ctx, uuid.MustParse(creada.ID))
	require.NoError(t, err)
	require.Len(t, recargada.Ingredientes, 2)

	huerfana := recargada.Ingredientes[1]
	assert.False(t, huerfana.Encontrado)
	assert.Equal(t, "Insumo no encontrado", huerfana.Nombre)
	assert.True(t, huerfana.CostoAportado.IsZero())
	// The saved cost snapshot still includes the deleted ingredient.
	assert.Equal(t, "8.10", recargada.CostoKg.StringFixed(2))
}

func TestCostoPorKgIgnoraLineasColgantes(t *testing.T) {
	idVivo := uuid.New()
	costo := CostoPorKg(
		[]model.DietaInsumo{
			{IDInsumo: idVivo, Porcentaje: decimal.NewFromInt(60)},
			{IDInsumo: uuid.New(), Porcentaje: decimal.NewFromInt(40)},
		},
		map[uuid.UUID]model.Insumo{
			idVivo: {CostoKg: decimal.NewFromInt(10)},
		},
	)
	assert.Equal(t, "6.00", costo.StringFixed(2))
}
