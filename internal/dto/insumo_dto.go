package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarInsumoRequest serves both register (POST) and full replace (PUT).
type GuardarInsumoRequest struct {
	Nombre         string `json:"nombre"          validate:"required,min=2,max=120"`
	CantidadActual Numero `json:"cantidad_actual" validate:"min=0"`
	StockMinimo    Numero `json:"stock_minimo"    validate:"min=0"`
	CostoKg        Numero `json:"costo_kg"        validate:"min=0"`
}

type AjustarStockRequest struct {
	Tipo     string `json:"tipo"     validate:"required,oneof=entrada salida"`
	Cantidad Numero `json:"cantidad"`
	Motivo   string `json:"motivo"   validate:"max=255"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

// InsumoFilter narrows the list endpoint. Estado: "criticos" | "adecuados" |
// "" (all); Q matches against nombre, case-insensitive.
type InsumoFilter struct {
	Q      string `form:"q"`
	Estado string `form:"estado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InsumoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	CantidadActual decimal.Decimal `json:"cantidad_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoKg        decimal.Decimal `json:"costo_kg"`
	ValorTotal     decimal.Decimal `json:"valor_total"`
	Nivel          string          `json:"nivel"`
}

type InsumoListResponse struct {
	Data            []InsumoResponse `json:"data"`
	Total           int              `json:"total"`
	ValorInventario decimal.Decimal  `json:"valor_inventario"`
	Criticos        int              `json:"criticos"`
}

type MovimientoResponse struct {
	ID            string          `json:"id"`
	IDInsumo      string          `json:"id_insumo"`
	Tipo          string          `json:"tipo"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	StockAnterior decimal.Decimal `json:"stock_anterior"`
	StockNuevo    decimal.Decimal `json:"stock_nuevo"`
	Motivo        string          `json:"motivo"`
	CreatedAt     string          `json:"created_at"`
}
