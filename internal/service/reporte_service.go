package service

import (
	"context"
	"sort"

	"agrogestor/internal/dto"
	"agrogestor/internal/model"
	"agrogestor/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// etapas fixes the iteration order of the population breakdown so report
// output is deterministic.
var etapas = []string{
	model.ObjetivoEngorda,
	model.ObjetivoDestete,
	model.ObjetivoMantenimiento,
	model.ObjetivoLactancia,
}

// ReporteService rolls the ledger, composer and projector outputs into
// portfolio-level aggregates. Everything is recomputed on demand from current
// repository state, with no caching and no incremental updates.
type ReporteService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	Reporte(ctx context.Context) (*dto.ReporteResponse, error)
}

type reporteService struct {
	insumoRepo repository.InsumoRepository
	dietaRepo  repository.DietaRepository
	loteRepo   repository.LoteRepository
}

func NewReporteService(insumoRepo repository.InsumoRepository, dietaRepo repository.DietaRepository, loteRepo repository.LoteRepository) ReporteService {
	return &reporteService{insumoRepo: insumoRepo, dietaRepo: dietaRepo, loteRepo: loteRepo}
}

func (s *reporteService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	insumos, dietas, lotes, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}

	totalAnimales := totalCabezas(lotes)
	costoTotal := costoDiarioTotal(lotes, porID(dietas))

	activas := 0
	for _, d := range dietas {
		if d.Estado == model.DietaActiva {
			activas++
		}
	}

	return &dto.DashboardResponse{
		TotalAnimales:       totalAnimales,
		CostoDiarioTotal:    costoTotal.Round(2),
		CostoPromedioCabeza: costoPromedioCabeza(costoTotal, totalAnimales),
		DietasActivas:       activas,
		InsumosEnRiesgo:     insumosEnRiesgo(insumos),
	}, nil
}

func (s *reporteService) Reporte(ctx context.Context) (*dto.ReporteResponse, error) {
	insumos, dietas, lotes, err := s.snapshots(ctx)
	if err != nil {
		return nil, err
	}
	dietasPorID := porID(dietas)

	totalAnimales := totalCabezas(lotes)
	costoTotal := costoDiarioTotal(lotes, dietasPorID)

	valorInventario := decimal.Zero
	for _, i := range insumos {
		valorInventario = valorInventario.Add(i.ValorTotal())
	}

	activas := 0
	for _, d := range dietas {
		if d.Estado == model.DietaActiva {
			activas++
		}
	}

	return &dto.ReporteResponse{
		TotalAnimales:       totalAnimales,
		ValorInventario:     valorInventario.Round(2),
		CostoDiarioTotal:    costoTotal.Round(2),
		CostoPromedioCabeza: costoPromedioCabeza(costoTotal, totalAnimales),
		CostoPromedioDietas: costoPromedioDietas(dietas),
		DietasActivas:       activas,
		PoblacionPorEtapa:   poblacionPorEtapa(lotes, totalAnimales),
		CostosPorLote:       costosPorLote(lotes, dietasPorID),
		VariacionDietas:     variacionDietas(dietas),
		InventarioPorValor:  inventarioPorValor(insumos),
		InsumosEnRiesgo:     insumosEnRiesgo(insumos),
	}, nil
}

func (s *reporteService) snapshots(ctx context.Context) ([]model.Insumo, []model.Dieta, []model.Lote, error) {
	insumos, err := s.insumoRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	dietas, err := s.dietaRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	lotes, err := s.loteRepo.List(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return insumos, dietas, lotes, nil
}

func porID(dietas []model.Dieta) map[uuid.UUID]model.Dieta {
	m := make(map[uuid.UUID]model.Dieta, len(dietas))
	for _, d := range dietas {
		m[d.ID] = d
	}
	return m
}

func totalCabezas(lotes []model.Lote) int {
	total := 0
	for _, l := range lotes {
		total += l.Cabezas
	}
	return total
}

func costoDiarioTotal(lotes []model.Lote, dietas map[uuid.UUID]model.Dieta) decimal.Decimal {
	total := decimal.Zero
	for idx := range lotes {
		total = total.Add(CostoDiario(&lotes[idx], dietas))
	}
	return total
}

// costoPromedioCabeza guards the divide-by-zero: an empty herd reports 0.00.
func costoPromedioCabeza(costoTotal decimal.Decimal, cabezas int) decimal.Decimal {
	if cabezas == 0 {
		return decimal.Zero.Round(2)
	}
	return costoTotal.Div(decimal.NewFromInt(int64(cabezas))).Round(2)
}

// promedioCostoDietas is the full-precision mean; display rounding happens at
// the response edge so derived figures never inherit the mean's rounding error.
func promedioCostoDietas(dietas []model.Dieta) decimal.Decimal {
	if len(dietas) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, d := range dietas {
		total = total.Add(d.CostoKg)
	}
	return total.Div(decimal.NewFromInt(int64(len(dietas))))
}

func costoPromedioDietas(dietas []model.Dieta) decimal.Decimal {
	return promedioCostoDietas(dietas).Round(2)
}

func poblacionPorEtapa(lotes []model.Lote, totalAnimales int) []dto.EtapaPoblacion {
	cabezas := make(map[string]int)
	for _, l := range lotes {
		cabezas[l.Etapa] += l.Cabezas
	}
	result := make([]dto.EtapaPoblacion, 0, len(cabezas))
	for _, etapa := range etapas {
		n, ok := cabezas[etapa]
		if !ok {
			continue
		}
		pct := decimal.Zero.Round(1)
		if totalAnimales > 0 {
			pct = decimal.NewFromInt(int64(n)).
				Div(decimal.NewFromInt(int64(totalAnimales))).
				Mul(cien).Round(1)
		}
		result = append(result, dto.EtapaPoblacion{Etapa: etapa, Cabezas: n, Porcentaje: pct})
	}
	return result
}

func costosPorLote(lotes []model.Lote, dietas map[uuid.UUID]model.Dieta) []dto.CostoLote {
	result := make([]dto.CostoLote, 0, len(lotes))
	for idx := range lotes {
		l := &lotes[idx]
		row := dto.CostoLote{
			ID:              l.ID.String(),
			Nombre:          l.Nombre,
			Cabezas:         l.Cabezas,
			ConsumoDiarioKg: l.ConsumoDiario().Round(2),
			CostoDiario:     CostoDiario(l, dietas).Round(2),
		}
		if l.IDDieta != nil {
			if dieta, ok := dietas[*l.IDDieta]; ok {
				nombre := dieta.Nombre
				row.Dieta = &nombre
			}
		}
		result = append(result, row)
	}
	return result
}

// variacionDietas compares each dieta against the full-precision mean, most
// expensive first.
func variacionDietas(dietas []model.Dieta) []dto.VariacionDieta {
	promedio := promedioCostoDietas(dietas)
	ordenadas := make([]model.Dieta, len(dietas))
	copy(ordenadas, dietas)
	sort.SliceStable(ordenadas, func(a, b int) bool {
		return ordenadas[a].CostoKg.GreaterThan(ordenadas[b].CostoKg)
	})
	result := make([]dto.VariacionDieta, 0, len(ordenadas))
	for _, d := range ordenadas {
		result = append(result, dto.VariacionDieta{
			ID:        d.ID.String(),
			Nombre:    d.Nombre,
			CostoKg:   d.CostoKg,
			Variacion: d.CostoKg.Sub(promedio).Round(2),
		})
	}
	return result
}

func inventarioPorValor(insumos []model.Insumo) []dto.InsumoResponse {
	ordenados := make([]model.Insumo, len(insumos))
	copy(ordenados, insumos)
	sort.SliceStable(ordenados, func(a, b int) bool {
		return ordenados[a].ValorTotal().GreaterThan(ordenados[b].ValorTotal())
	})
	result := make([]dto.InsumoResponse, 0, len(ordenados))
	for idx := range ordenados {
		result = append(result, *insumoToResponse(&ordenados[idx]))
	}
	return result
}
