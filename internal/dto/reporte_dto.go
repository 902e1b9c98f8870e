package dto

import "github.com/shopspring/decimal"

// DashboardResponse feeds the landing view: herd size, daily spend and the
// stock alerts strip.
type DashboardResponse struct {
	TotalAnimales       int              `json:"total_animales"`
	CostoDiarioTotal    decimal.Decimal  `json:"costo_diario_total"`
	CostoPromedioCabeza decimal.Decimal  `json:"costo_promedio_cabeza"`
	DietasActivas       int              `json:"dietas_activas"`
	InsumosEnRiesgo     []InsumoResponse `json:"insumos_en_riesgo"`
}

// EtapaPoblacion is one row of the population-by-stage breakdown.
type EtapaPoblacion struct {
	Etapa      string          `json:"etapa"`
	Cabezas    int             `json:"cabezas"`
	Porcentaje decimal.Decimal `json:"porcentaje"`
}

// CostoLote is one row of the per-lot daily cost table.
type CostoLote struct {
	ID              string          `json:"id"`
	Nombre          string          `json:"nombre"`
	Cabezas         int             `json:"cabezas"`
	Dieta           *string         `json:"dieta"`
	ConsumoDiarioKg decimal.Decimal `json:"consumo_diario_kg"`
	CostoDiario     decimal.Decimal `json:"costo_diario"`
}

// VariacionDieta compares one dieta's cost against the mean across all dietas.
type VariacionDieta struct {
	ID        string          `json:"id"`
	Nombre    string          `json:"nombre"`
	CostoKg   decimal.Decimal `json:"costo_kg"`
	Variacion decimal.Decimal `json:"variacion"`
}

// ReporteResponse is the full report sheet, recomputed on demand from current
// repository state.
type ReporteResponse struct {
	TotalAnimales       int              `json:"total_animales"`
	ValorInventario     decimal.Decimal  `json:"valor_inventario"`
	CostoDiarioTotal    decimal.Decimal  `json:"costo_diario_total"`
	CostoPromedioCabeza decimal.Decimal  `json:"costo_promedio_cabeza"`
	CostoPromedioDietas decimal.Decimal  `json:"costo_promedio_dietas"`
	DietasActivas       int              `json:"dietas_activas"`
	PoblacionPorEtapa   []EtapaPoblacion `json:"poblacion_por_etapa"`
	CostosPorLote       []CostoLote      `json:"costos_por_lote"`
	VariacionDietas     []VariacionDieta `json:"variacion_dietas"`
	InventarioPorValor  []InsumoResponse `json:"inventario_por_valor"`
	InsumosEnRiesgo     []InsumoResponse `json:"insumos_en_riesgo"`
}
