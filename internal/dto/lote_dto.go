package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarLoteRequest serves both create (POST) and replace (PUT).
// IDDieta is optional and unchecked: assigning a dieta that no longer exists
// is allowed, projections simply degrade to zero.
type GuardarLoteRequest struct {
	Nombre       string `json:"nombre"        validate:"required,min=2,max=120"`
	Cabezas      int    `json:"cabezas"       validate:"required,min=1"`
	PesoPromedio Numero `json:"peso_promedio" validate:"min=1"`
	Etapa        string `json:"etapa"         validate:"required,oneof=Engorda Destete Mantenimiento Lactancia"`
	Estado       string `json:"estado"        validate:"omitempty,oneof=Activo Vendido Cuarentena"`
	IDDieta      string `json:"id_dieta"`
}

// LoteFilter narrows the list endpoint by etapa and name substring.
type LoteFilter struct {
	Q     string `form:"q"`
	Etapa string `form:"etapa"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LoteResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Cabezas      int             `json:"cabezas"`
	PesoPromedio decimal.Decimal `json:"peso_promedio"`
	Etapa        string          `json:"etapa"`
	Estado       string          `json:"estado"`
	IDDieta      *string         `json:"id_dieta"`
	Dieta        *string         `json:"dieta"` // resolved name, nil when absent or dangling
}

type LoteListResponse struct {
	Data  []LoteResponse `json:"data"`
	Total int            `json:"total"`
}

// ProyeccionLoteResponse is the daily feed projection for one lote.
// CostoDiario is 0 when no dieta resolves.
type ProyeccionLoteResponse struct {
	IDLote          string          `json:"id_lote"`
	ConsumoDiarioKg decimal.Decimal `json:"consumo_diario_kg"`
	CostoDiario     decimal.Decimal `json:"costo_diario"`
}

// RegistrarPesajeRequest records a weighing. Fecha is optional ("2006-01-02",
// defaults to today); PesoPromedio must be positive, checked in the service.
type RegistrarPesajeRequest struct {
	Fecha        string `json:"fecha"`
	PesoPromedio Numero `json:"peso_promedio"`
	Notas        string `json:"notas" validate:"max=255"`
}

type PesajeResponse struct {
	ID             string           `json:"id"`
	IDLote         string           `json:"id_lote"`
	Fecha          string           `json:"fecha"`
	PesoAnterior   decimal.Decimal  `json:"peso_anterior"`
	PesoNuevo      decimal.Decimal  `json:"peso_nuevo"`
	GananciaDiaria *decimal.Decimal `json:"ganancia_diaria"`
	Notas          string           `json:"notas"`
}

// RegistrarAlimentacionRequest records a served ration. A zero or absent
// CantidadServidaKg defaults to the lot's projected daily consumption.
type RegistrarAlimentacionRequest struct {
	Fecha             string `json:"fecha"`
	CantidadServidaKg Numero `json:"cantidad_servida_kg"`
}

type AlimentacionResponse struct {
	ID                string          `json:"id"`
	IDLote            string          `json:"id_lote"`
	IDDieta           *string         `json:"id_dieta"`
	Fecha             string          `json:"fecha"`
	CantidadServidaKg decimal.Decimal `json:"cantidad_servida_kg"`
	CostoTotalRacion  decimal.Decimal `json:"costo_total_racion"`
}
