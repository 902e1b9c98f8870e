package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NivelStock clasifica el riesgo de quiebre de stock de un insumo.
type NivelStock string

const (
	NivelCritico  NivelStock = "Crítico"
	NivelBajo     NivelStock = "Bajo"
	NivelAdecuado NivelStock = "Adecuado"
)

// umbralBajo is the multiplier applied to StockMinimo for the "Bajo" band.
// Quantities at or above minimo but below minimo*1.2 trigger a low-stock alert.
var umbralBajo = decimal.NewFromFloat(1.2)

// Insumo is a raw feed ingredient: on-hand quantity, minimum threshold and
// cost, all in kg / currency-per-kg. Quantities never go negative; the only
// mutation paths are full replace (edit form) and AjustarStock.
type Insumo struct {
	ID             uuid.UUID       `json:"id"`
	Nombre         string          `json:"nombre"`
	CantidadActual decimal.Decimal `json:"cantidad_actual"`
	StockMinimo    decimal.Decimal `json:"stock_minimo"`
	CostoKg        decimal.Decimal `json:"costo_kg"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NivelStock returns the risk band for the current quantity.
// Boundary: cantidad == minimo is NOT Crítico, it is Bajo.
func (i *Insumo) NivelStock() NivelStock {
	switch {
	case i.CantidadActual.LessThan(i.StockMinimo):
		return NivelCritico
	case i.CantidadActual.LessThan(i.StockMinimo.Mul(umbralBajo)):
		return NivelBajo
	default:
		return NivelAdecuado
	}
}

// EnRiesgo reports whether the insumo should appear on the dashboard alert list.
func (i *Insumo) EnRiesgo() bool { return i.NivelStock() != NivelAdecuado }

// ValorTotal is the invested value: cantidad_actual * costo_kg.
func (i *Insumo) ValorTotal() decimal.Decimal {
	return i.CantidadActual.Mul(i.CostoKg)
}
